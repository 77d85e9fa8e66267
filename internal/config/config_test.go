package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const validConfig = `{
  "initial_ph": 40,
  "server": {"address": ":4000"},
  "houses": [
    {"id": "C1", "name": "A", "base_cost": 2, "card_front": "/f/c1.png"},
    {"id": "C2", "name": "B", "base_cost": 1, "card_front": "/f/c2.png"},
    {"id": "C3", "name": "C", "base_cost": 1, "card_front": "/f/c3.png"},
    {"id": "C4", "name": "D", "base_cost": 2, "card_front": "/f/c4.png"},
    {"id": "C5", "name": "E", "base_cost": 0, "card_front": ""},
    {"id": "C6", "name": "F", "base_cost": 3, "card_front": "/f/c6.png"},
    {"id": "C7", "name": "G", "base_cost": 1, "card_front": "/f/c7.png"},
    {"id": "C8", "name": "H", "base_cost": 3, "card_front": "/f/c8.png"},
    {"id": "C9", "name": "I", "base_cost": 1, "card_front": "/f/c9.png"}
  ],
  "events": [
    {"name": "Evento", "fluff": "x", "effects": {"move_delta": 1}}
  ],
  "final_riddle_fragments": [
    {"index": 1, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}},
    {"index": 2, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}},
    {"index": 3, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}},
    {"index": 4, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}},
    {"index": 5, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}},
    {"index": 6, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}},
    {"index": 7, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}},
    {"index": 8, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}}
  ],
  "final_challenge": {"answer": "Herança Diamante", "success_message": "ok", "failure_message": "nope"}
}`

func TestLoadConfigValid(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.InitialPH != 40 {
		t.Fatalf("initial_ph = %d, want 40", cfg.InitialPH)
	}
	if cfg.ServerAddress != ":4000" {
		t.Fatalf("server address = %q, want :4000", cfg.ServerAddress)
	}
	if len(cfg.Houses) != 9 || len(cfg.Fragments) != 8 {
		t.Fatalf("unexpected content sizes: %d houses, %d fragments", len(cfg.Houses), len(cfg.Fragments))
	}
}

func TestLoadConfigRejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantSub string
	}{
		{
			name:    "missing house",
			mutate:  func(s string) string { return strings.Replace(s, `"id": "C9"`, `"id": "C9X"`, 1) },
			wantSub: "c9",
		},
		{
			name:    "cost out of range",
			mutate:  func(s string) string { return strings.Replace(s, `"base_cost": 3, "card_front": "/f/c6.png"`, `"base_cost": 4, "card_front": "/f/c6.png"`, 1) },
			wantSub: "cost",
		},
		{
			name:    "missing card front",
			mutate:  func(s string) string { return strings.Replace(s, `"card_front": "/f/c2.png"`, `"card_front": ""`, 1) },
			wantSub: "card_front",
		},
		{
			name:    "no events",
			mutate:  func(s string) string { return strings.Replace(s, `{"name": "Evento", "fluff": "x", "effects": {"move_delta": 1}}`, ``, 1) },
			wantSub: "event",
		},
		{
			name:    "missing fragment",
			mutate:  func(s string) string { return strings.Replace(s, `{"index": 8, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}}`, `{"index": 7, "easy": {"text": "t", "source": "s"}, "hard": {"text": "t", "source": "s"}}`, 1) },
			wantSub: "fragment",
		},
		{
			name:    "no final answer",
			mutate:  func(s string) string { return strings.Replace(s, `"answer": "Herança Diamante"`, `"answer": "  "`, 1) },
			wantSub: "answer",
		},
		{
			name:    "zero ph",
			mutate:  func(s string) string { return strings.Replace(s, `"initial_ph": 40`, `"initial_ph": 0`, 1) },
			wantSub: "initial_ph",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.mutate(validConfig)))
			if err == nil {
				t.Fatalf("expected rejection")
			}
			if !strings.Contains(strings.ToLower(err.Error()), tc.wantSub) {
				t.Fatalf("error %q does not mention %q", err, tc.wantSub)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
