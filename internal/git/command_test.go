package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandArgs(t *testing.T) {
	must := func(cmd Command, err error) Command {
		t.Helper()
		require.NoError(t, err)
		return cmd
	}

	tests := []struct {
		name string
		cmd  Command
		op   Op
		args []string
	}{
		{"stage all", StageAll(), OpStageAll, []string{"add", "-A"}},
		{"commit", must(CommitWithMessage("-rf message")), OpCommit, []string{"commit", "-m", "-rf message"}},
		{"last hash", LastCommitHash(), OpLastHash, []string{"log", "--pretty=format:%h", "-n", "1"}},
		{"push branch", must(PushBranch("origin", "feature/x")), OpPush, []string{"push", "origin", "feature/x"}},
		{"push head", must(PushHead("origin")), OpPush, []string{"push", "origin", "HEAD"}},
		{"pull", must(Pull("origin")), OpPull, []string{"pull", "origin"}},
		{"hard reset", must(HardReset("a1b2c3d")), OpResetHard, []string{"reset", "--hard", "a1b2c3d"}},
		{"soft reset", must(SoftReset(RefPreviousHead)), OpResetSoft, []string{"reset", "--soft", "HEAD@{1}"}},
		{"checkout", must(Checkout("release-1.0")), OpCheckout, []string{"checkout", "release-1.0"}},
		{"status", StatusShort(), OpStatus, []string{"status", "--short"}},
		{"diff", must(DiffFile("wp-content/index.php")), OpDiff, []string{"diff", "HEAD", "--", "wp-content/index.php"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.op, tt.cmd.Op())
			assert.Equal(t, tt.args, tt.cmd.Args())
		})
	}
}

func TestCommandArgsAreCopied(t *testing.T) {
	cmd := StageAll()
	args := cmd.Args()
	args[0] = "rm"

	assert.Equal(t, []string{"add", "-A"}, cmd.Args())
}

func TestValidateRef(t *testing.T) {
	valid := []string{"main", "feature/login", "v1.2.3", "a1b2c3d", "HEAD", "HEAD@{1}", "release_2024-01"}
	for _, ref := range valid {
		assert.NoError(t, ValidateRef(ref), ref)
	}

	invalid := []string{
		"",
		"-d",
		"--force",
		"main; rm -rf /",
		"a b",
		"main..dev",
		"feature/",
		"main.lock",
		"$(whoami)",
		"`id`",
		"main\n",
	}
	for _, ref := range invalid {
		assert.ErrorIs(t, ValidateRef(ref), ErrInvalidArgument, ref)
	}
}

func TestValidateHash(t *testing.T) {
	for _, hash := range []string{"abc1", "a1b2c3d", "ABCDEF0", "0123456789abcdef0123456789abcdef01234567"} {
		assert.NoError(t, ValidateHash(hash), hash)
	}

	for _, hash := range []string{"", "abc", "0xabc1", "0Xabc1", "main", "HEAD", "abc1234 ", "g123456",
		"0123456789abcdef0123456789abcdef012345678"} {
		assert.ErrorIs(t, ValidateHash(hash), ErrInvalidArgument, hash)
	}
}

func TestConstructorsRejectUnsafeInput(t *testing.T) {
	_, err := Checkout("--orphan")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = HardReset("HEAD; rm -rf /")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = PushBranch("origin", "-f")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Pull("--upload-pack=evil")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = CommitWithMessage("   ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = DiffFile("../etc/passwd")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = DiffFile("/etc/passwd")
	require.ErrorIs(t, err, ErrInvalidArgument)
}
