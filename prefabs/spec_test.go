package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

func useDiskDir(t *testing.T, dir string) {
	t.Helper()
	prev := DiskDir
	DiskDir = dir
	t.Cleanup(func() { DiskDir = prev })
}

func TestEmbeddedSpecsLoad(t *testing.T) {
	useDiskDir(t, t.TempDir())

	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if player.JumpDistance != 8 || player.BaseEnergy != 10 {
		t.Fatalf("player spec = %+v", player)
	}

	bar, err := LoadEnergyBarSpec()
	if err != nil {
		t.Fatalf("LoadEnergyBarSpec: %v", err)
	}
	if bar.MaxWidth != 150 {
		t.Fatalf("energy bar max width = %v, want 150", bar.MaxWidth)
	}

	if _, err := LoadHighlightSpec(); err != nil {
		t.Fatalf("LoadHighlightSpec: %v", err)
	}

	enemy, err := LoadEnemyTurnSpec()
	if err != nil {
		t.Fatalf("LoadEnemyTurnSpec: %v", err)
	}
	if _, err := LoadScript(enemy.Script); err != nil {
		t.Fatalf("LoadScript(%q): %v", enemy.Script, err)
	}
}

func TestDiskCopyWins(t *testing.T) {
	dir := t.TempDir()
	useDiskDir(t, dir)
	data := []byte("name: player\njump_distance: 3\nbase_energy: 4\n")
	if err := os.WriteFile(filepath.Join(dir, PlayerSpecFile), data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if spec.JumpDistance != 3 || spec.BaseEnergy != 4 {
		t.Fatalf("disk spec not used: %+v", spec)
	}
	if _, ok := ModTime(PlayerSpecFile); !ok {
		t.Fatalf("expected a mod time for the disk copy")
	}
}

func TestInvalidSpecs(t *testing.T) {
	cases := []struct {
		name string
		file string
		body string
		load func() error
	}{
		{"negative_energy", PlayerSpecFile, "base_energy: -1\n", func() error { _, err := LoadPlayerSpec(); return err }},
		{"zero_bar_width", EnergyBarSpecFile, "max_width: 0\n", func() error { _, err := LoadEnergyBarSpec(); return err }},
		{"missing_script", EnemyTurnSpecFile, "think_frames: 3\n", func() error { _, err := LoadEnemyTurnSpec(); return err }},
		{"bad_yaml", PlayerSpecFile, "jump_distance: [\n", func() error { _, err := LoadPlayerSpec(); return err }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dir := t.TempDir()
			useDiskDir(t, dir)
			if err := os.WriteFile(filepath.Join(dir, c.file), []byte(c.body), 0o644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if err := c.load(); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{`"#ff0000"`, color.RGBA{R: 255, A: 255}, false},
		{`"00ff00ff"`, color.RGBA{G: 255, A: 255}, false},
		{`"#fff"`, color.RGBA{}, true},
		{`"#gg0000"`, color.RGBA{}, true},
		{`[1, 2]`, color.RGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if (err != nil) != c.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, c.wantErr)
			}
			if err == nil && got.OrDefault(color.RGBA{}) != c.want {
				t.Fatalf("colour = %v, want %v", got.OrDefault(color.RGBA{}), c.want)
			}
		})
	}

	var unset *YAMLColor
	fallback := color.RGBA{B: 9, A: 255}
	if unset.OrDefault(fallback) != fallback {
		t.Fatalf("nil colour should use the fallback")
	}
}

func TestCleanPaths(t *testing.T) {
	if got := cleanScriptPath("prefabs/scripts/enemy_turn.tengo"); got != "scripts/enemy_turn.tengo" {
		t.Fatalf("cleanScriptPath = %q", got)
	}
	if got := cleanPrefabPath("prefabs/player.yaml"); got != "player.yaml" {
		t.Fatalf("cleanPrefabPath = %q", got)
	}
}

func TestWatcherFilter(t *testing.T) {
	cases := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "prefabs/player.yaml", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "prefabs/scripts/enemy_turn.tengo", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "prefabs/player.yaml", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "prefabs/player.yaml", Op: fsnotify.Rename}, false},
		{fsnotify.Event{Name: "prefabs/player.yaml", Op: fsnotify.Remove}, false},
		{fsnotify.Event{Name: "prefabs/notes.txt", Op: fsnotify.Write}, false},
	}
	for _, c := range cases {
		if got := relevant(c.event); got != c.want {
			t.Fatalf("relevant(%v) = %v, want %v", c.event, got, c.want)
		}
	}
}

func TestWatcherBatchesSettledEdits(t *testing.T) {
	w := newWatcher(nil)
	events := make(chan fsnotify.Event)
	errs := make(chan error)
	go w.run(events, errs, 20*time.Millisecond)
	defer w.Close()

	for _, ev := range []fsnotify.Event{
		{Name: "prefabs/player.yaml", Op: fsnotify.Write},
		{Name: "prefabs/player.yaml", Op: fsnotify.Write},
		{Name: "prefabs/scripts/enemy_turn.tengo", Op: fsnotify.Create},
		{Name: "prefabs/highlight.yaml", Op: fsnotify.Remove},
		{Name: "prefabs/notes.txt", Op: fsnotify.Write},
	} {
		events <- ev
	}
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("edits reported before the directory settled: %v", got)
	}

	want := []string{
		filepath.Clean("prefabs/player.yaml"),
		filepath.Clean("prefabs/scripts/enemy_turn.tengo"),
	}
	deadline := time.Now().Add(2 * time.Second)
	for {
		got := w.Poll()
		if len(got) > 0 {
			if !slices.Equal(got, want) {
				t.Fatalf("Poll = %v, want %v", got, want)
			}
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("no batch after the settle delay")
		}
		time.Sleep(5 * time.Millisecond)
	}
	if got := w.Poll(); len(got) != 0 {
		t.Fatalf("second Poll = %v, want empty", got)
	}
}

func TestWatcherPollMergesBatches(t *testing.T) {
	w := newWatcher(nil)
	w.batches <- []string{"b.yaml", "a.yaml"}
	w.batches <- []string{"a.yaml"}
	if got := w.Poll(); !slices.Equal(got, []string{"a.yaml", "b.yaml"}) {
		t.Fatalf("Poll = %v", got)
	}
}
