package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathSegmentValidator(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  error
	}{
		{"plain name", "notes1.pdf", nil},
		{"branch tag", "CSE", nil},
		{"spaces allowed", "unit 3 notes.pdf", nil},
		{"empty", "", ErrSegmentEmpty},
		{"dot", ".", ErrSegmentUnsafe},
		{"dotdot", "..", ErrSegmentUnsafe},
		{"traversal", "../../etc/passwd", ErrSegmentUnsafe},
		{"forward slash", "CSE/extra", ErrSegmentUnsafe},
		{"backslash", "CSE\\extra", ErrSegmentUnsafe},
		{"nul byte", "notes\x00.pdf", ErrSegmentUnsafe},
		{"too long", strings.Repeat("a", 256), ErrSegmentTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, PathSegmentValidator(tt.value), tt.want)
		})
	}
}

func TestEmailValidator(t *testing.T) {
	assert.NoError(t, EmailValidator("student@college.edu"))
	assert.ErrorIs(t, EmailValidator(""), ErrEmailEmpty)
	assert.ErrorIs(t, EmailValidator("not-an-email"), ErrEmailInvalid)
}

func TestPasswordValidator(t *testing.T) {
	assert.NoError(t, PasswordValidator("longenough"))
	assert.ErrorIs(t, PasswordValidator(""), ErrPasswordEmpty)
	assert.ErrorIs(t, PasswordValidator("short"), ErrPasswordTooShort)
	assert.ErrorIs(t, PasswordValidator(strings.Repeat("a", 256)), ErrPasswordTooLong)
}
