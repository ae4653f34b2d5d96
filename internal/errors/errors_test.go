package errors

import (
	"errors"
	"testing"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *AppError
		want string
	}{
		{
			name: "error without cause",
			err: &AppError{
				Code:    ErrCodeNotFound,
				Message: "room not found",
			},
			want: "room not found",
		},
		{
			name: "error with cause",
			err: &AppError{
				Code:    ErrCodeInternal,
				Message: "attach knowledge",
				Cause:   errors.New("connection reset"),
			},
			want: "attach knowledge: connection reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("AppError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(cause, ErrCodeInternal, "upsert assistant")

	if unwrapped := err.Unwrap(); !errors.Is(unwrapped, cause) {
		t.Errorf("AppError.Unwrap() = %v, want %v", unwrapped, cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should see through the AppError wrapper")
	}
}

func TestWrap_NilError(t *testing.T) {
	if err := Wrap(nil, ErrCodeInternal, "noop"); err != nil {
		t.Errorf("Wrap(nil) = %v, want nil", err)
	}
}

// Each constructor stamps its code, and the matching predicate recognizes
// only that code.
func TestConstructorsAndPredicates(t *testing.T) {
	tests := []struct {
		name  string
		err   *AppError
		code  ErrorCode
		check func(error) bool
	}{
		{"not found", NotFound("room not found"), ErrCodeNotFound, IsNotFound},
		{"not found formatted", NotFoundf("room %s not found", "r1"), ErrCodeNotFound, IsNotFound},
		{"conflict", Conflict("A Library with that name already exists."), ErrCodeConflict, IsConflict},
		{"validation", Validation("name is required"), ErrCodeValidation, IsValidation},
		{"validation field", ValidationField("email", "invalid email format"), ErrCodeValidation, IsValidation},
		{"foreign key", ForeignKey("Cannot delete library because it is attached to a Room."), ErrCodeForeignKey, IsForeignKey},
		{"internal", Internal("unexpected database error"), ErrCodeInternal, nil},
		{"timeout", &AppError{Code: ErrCodeTimeout, Message: "query timed out"}, ErrCodeTimeout, IsTimeout},
		{"canceled", &AppError{Code: ErrCodeCanceled, Message: "request canceled"}, ErrCodeCanceled, IsCanceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %v, want %v", tt.err.Code, tt.code)
			}
			if tt.check == nil {
				return
			}
			if !tt.check(tt.err) {
				t.Errorf("predicate rejected %v", tt.err)
			}
			if tt.check(NotFound("decoy")) && tt.code != ErrCodeNotFound {
				t.Error("predicate matched a different code")
			}
			if tt.check(nil) {
				t.Error("predicate matched nil")
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(Forbidden("room access denied")); got != ErrCodeForbidden {
		t.Errorf("GetCode() = %v, want %v", got, ErrCodeForbidden)
	}
	if got := GetCode(errors.New("plain error")); got != "" {
		t.Errorf("GetCode(plain) = %v, want empty", got)
	}
	if got := GetCode(nil); got != "" {
		t.Errorf("GetCode(nil) = %v, want empty", got)
	}
}

func TestGetField(t *testing.T) {
	if got := GetField(ValidationField("channel_type", "unknown channel type")); got != "channel_type" {
		t.Errorf("GetField() = %v, want channel_type", got)
	}
	if got := GetField(NotFound("room not found")); got != "" {
		t.Errorf("GetField(no field) = %v, want empty", got)
	}
	if got := GetField(nil); got != "" {
		t.Errorf("GetField(nil) = %v, want empty", got)
	}
}
