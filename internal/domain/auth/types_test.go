package auth

import "testing"

func TestSessionPayloadComplete(t *testing.T) {
	tests := []struct {
		name    string
		payload SessionPayload
		want    bool
	}{
		{"full payload", SessionPayload{UserID: "u1", AuthMethod: MethodPassword, Nonce: "n1"}, true},
		{"missing nonce", SessionPayload{UserID: "u1", AuthMethod: MethodPassword}, false},
		{"missing user", SessionPayload{Nonce: "n1"}, false},
		{"empty", SessionPayload{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.payload.Complete(); got != tt.want {
				t.Errorf("Complete() = %v, want %v", got, tt.want)
			}
		})
	}
}
