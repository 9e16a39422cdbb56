package application

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
		errMsg    string
	}{
		{name: "valid value", fieldName: "target", value: "/repo"},
		{name: "empty value", fieldName: "target", value: "", wantErr: true, errMsg: "target: target is required"},
		{name: "whitespace only", fieldName: "folderPath", value: "   ", wantErr: true, errMsg: "folderPath: folder path is required"},
		{name: "unknown field name", fieldName: "custom", value: "", wantErr: true, errMsg: "custom: custom is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error %q, got nil", tt.errMsg)
				}
				if err.Error() != tt.errMsg {
					t.Errorf("expected error %q, got %q", tt.errMsg, err.Error())
				}
				var ve *ValidationError
				if !errors.As(err, &ve) {
					t.Errorf("expected *ValidationError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestResolveTarget(t *testing.T) {
	t.Run("absolute path", func(t *testing.T) {
		abs := filepath.Join(t.TempDir(), "src")
		got, err := ResolveTarget(abs)
		if err != nil || got != abs {
			t.Errorf("ResolveTarget(%q) = %q, %v", abs, got, err)
		}
	})

	t.Run("relative path is made absolute", func(t *testing.T) {
		got, err := ResolveTarget("some/dir")
		if err != nil {
			t.Fatal(err)
		}
		if !filepath.IsAbs(got) {
			t.Errorf("expected absolute path, got %q", got)
		}
	})

	t.Run("non-filesystem target", func(t *testing.T) {
		_, err := ResolveTarget("vscode-remote://ssh-remote+box/repo")
		if !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("expected ErrInvalidTarget, got %v", err)
		}
	})

	t.Run("empty target", func(t *testing.T) {
		var ve *ValidationError
		if _, err := ResolveTarget(""); !errors.As(err, &ve) {
			t.Errorf("expected *ValidationError, got %v", err)
		}
	})
}
