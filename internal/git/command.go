package git

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

// Op identifies one of the git operations the runner knows how to execute.
type Op string

const (
	OpStageAll  Op = "add"
	OpCommit    Op = "commit"
	OpLastHash  Op = "log"
	OpPush      Op = "push"
	OpPull      Op = "pull"
	OpResetHard Op = "reset --hard"
	OpResetSoft Op = "reset --soft"
	OpCheckout  Op = "checkout"
	OpStatus    Op = "status"
	OpDiff      Op = "diff"
)

const (
	RefHead         = "HEAD"
	RefPreviousHead = "HEAD@{1}"
)

var (
	refPattern  = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9/_.@{}-]*$`)
	hashPattern = regexp.MustCompile(`^[0-9a-fA-F]{4,40}$`)
)

// Command is a validated git invocation. The zero value is not runnable;
// use the constructors below.
type Command struct {
	op   Op
	args []string
}

func (c Command) Op() Op {
	return c.op
}

// Args returns a copy of the argument vector passed to the git binary.
func (c Command) Args() []string {
	return append([]string(nil), c.args...)
}

func (c Command) String() string {
	return "git " + strings.Join(c.args, " ")
}

func StageAll() Command {
	return Command{op: OpStageAll, args: []string{"add", "-A"}}
}

func CommitWithMessage(message string) (Command, error) {
	if strings.TrimSpace(message) == "" {
		return Command{}, fmt.Errorf("%w: commit message is empty", ErrInvalidArgument)
	}
	if strings.ContainsRune(message, 0) {
		return Command{}, fmt.Errorf("%w: commit message contains NUL", ErrInvalidArgument)
	}
	return Command{op: OpCommit, args: []string{"commit", "-m", message}}, nil
}

func LastCommitHash() Command {
	return Command{op: OpLastHash, args: []string{"log", "--pretty=format:%h", "-n", "1"}}
}

func PushBranch(remote, branch string) (Command, error) {
	if err := ValidateRef(remote); err != nil {
		return Command{}, err
	}
	if err := ValidateRef(branch); err != nil {
		return Command{}, err
	}
	return Command{op: OpPush, args: []string{"push", remote, branch}}, nil
}

func PushHead(remote string) (Command, error) {
	return PushBranch(remote, RefHead)
}

func Pull(remote string) (Command, error) {
	if err := ValidateRef(remote); err != nil {
		return Command{}, err
	}
	return Command{op: OpPull, args: []string{"pull", remote}}, nil
}

func HardReset(ref string) (Command, error) {
	if err := ValidateRef(ref); err != nil {
		return Command{}, err
	}
	return Command{op: OpResetHard, args: []string{"reset", "--hard", ref}}, nil
}

func SoftReset(ref string) (Command, error) {
	if err := ValidateRef(ref); err != nil {
		return Command{}, err
	}
	return Command{op: OpResetSoft, args: []string{"reset", "--soft", ref}}, nil
}

func Checkout(branch string) (Command, error) {
	if err := ValidateRef(branch); err != nil {
		return Command{}, err
	}
	return Command{op: OpCheckout, args: []string{"checkout", branch}}, nil
}

func StatusShort() Command {
	return Command{op: OpStatus, args: []string{"status", "--short"}}
}

func DiffFile(file string) (Command, error) {
	if err := ValidatePath(file); err != nil {
		return Command{}, err
	}
	return Command{op: OpDiff, args: []string{"diff", RefHead, "--", file}}, nil
}

// ValidateRef accepts branch names, remotes, commit hashes and reflog
// selectors such as HEAD@{1}. Anything that could be read as an option is
// rejected.
func ValidateRef(ref string) error {
	if ref == "" {
		return fmt.Errorf("%w: git ref cannot be empty", ErrInvalidArgument)
	}
	if !refPattern.MatchString(ref) {
		return fmt.Errorf("%w: invalid git ref %q", ErrInvalidArgument, ref)
	}
	if strings.Contains(ref, "..") || strings.HasSuffix(ref, "/") || strings.HasSuffix(ref, ".lock") {
		return fmt.Errorf("%w: invalid git ref %q", ErrInvalidArgument, ref)
	}
	return nil
}

// ValidateHash accepts abbreviated and full commit hashes, hex digits only.
func ValidateHash(hash string) error {
	if !hashPattern.MatchString(hash) {
		return fmt.Errorf("%w: invalid commit hash %q", ErrInvalidArgument, hash)
	}
	return nil
}

// ValidatePath accepts repository-relative paths that stay inside the tree.
func ValidatePath(file string) error {
	if strings.TrimSpace(file) == "" {
		return fmt.Errorf("%w: file path cannot be empty", ErrInvalidArgument)
	}
	if strings.ContainsRune(file, 0) {
		return fmt.Errorf("%w: file path contains NUL", ErrInvalidArgument)
	}
	if path.IsAbs(file) {
		return fmt.Errorf("%w: file path must be relative", ErrInvalidArgument)
	}
	for _, part := range strings.Split(file, "/") {
		if part == ".." {
			return fmt.Errorf("%w: file path cannot contain '..'", ErrInvalidArgument)
		}
	}
	return nil
}
