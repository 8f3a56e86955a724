package game

import "testing"

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		seed    string
		level   string
		want    Config
		wantErr bool
	}{
		{"empty", "", "", Config{}, false},
		{"seed and level", "42", "warren", Config{Seed: 42, Level: "warren"}, false},
		{"negative seed", "-7", "", Config{Seed: -7}, false},
		{"bad seed", "forty-two", "", Config{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvSeed, tt.seed)
			t.Setenv(EnvLevel, tt.level)

			got, err := LoadConfig()
			if tt.wantErr {
				if err == nil {
					t.Error("LoadConfig() should fail")
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("LoadConfig() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolveSeed(t *testing.T) {
	if got := (Config{Seed: 99}).ResolveSeed(); got != 99 {
		t.Errorf("ResolveSeed() = %d, want 99", got)
	}
	if got := (Config{}).ResolveSeed(); got == 0 {
		t.Error("ResolveSeed() with no seed should generate one")
	}
}
