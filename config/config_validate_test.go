package config

import (
	"strings"
	"testing"
)

func TestValidate_SecretKeyLength(t *testing.T) {
	longSecret := strings.Repeat("a", minSecretKeyLength)
	shortSecret := strings.Repeat("a", minSecretKeyLength-1)

	tests := []struct {
		name    string
		access  string
		refresh string
		wantErr string
	}{
		{name: "both long enough", access: longSecret, refresh: longSecret},
		{name: "access too short", access: shortSecret, refresh: longSecret, wantErr: "secretKey.access"},
		{name: "refresh too short", access: longSecret, refresh: shortSecret, wantErr: "secretKey.refresh"},
		{name: "access empty", access: "", refresh: longSecret, wantErr: "secretKey.access"},
		{name: "both missing", access: "", refresh: "", wantErr: "secretKey.access"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.SecretKey.Access = tt.access
			cfg.SecretKey.Refresh = tt.refresh

			err := validate(cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validate() = %v, want nil", err)
				}

				return
			}

			if err == nil {
				t.Fatalf("validate() = nil, want error mentioning %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("validate() = %q, want error mentioning %q", err, tt.wantErr)
			}
		})
	}
}
