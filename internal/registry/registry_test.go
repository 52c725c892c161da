package registry

import (
	"testing"

	"github.com/Emilinya/bounce/internal/core"
)

type stubDemo struct {
	id   string
	opts Options
}

func (d *stubDemo) ID() string { return d.id }
func (d *stubDemo) Title() string { return "Stub " + d.id }
func (d *stubDemo) Reset(core.RuntimeConfig) {}
func (d *stubDemo) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (d *stubDemo) Render(*core.Screen) {}
func (d *stubDemo) State() core.DemoState { return core.DemoState{} }

func stubFactory(id string) Factory {
	return func(opts Options) Demo { return &stubDemo{id: id, opts: opts} }
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub-b", stubFactory("zz-stub-b"))
	Register("zz-stub-a", stubFactory("zz-stub-a"))

	if !Exists("zz-stub-a") || Exists("zz-missing") {
		t.Fatal("Exists() returned wrong result")
	}

	d, err := Create("zz-stub-a", Options{ConfigPath: "x.yaml"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if d.ID() != "zz-stub-a" || d.(*stubDemo).opts.ConfigPath != "x.yaml" {
		t.Errorf("Create() = %+v", d)
	}

	if _, err := Create("zz-missing", Options{}); err == nil {
		t.Error("Create() of unknown demo should fail")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "zz-stub-a" || info.ID == "zz-stub-b" {
			ids = append(ids, info.ID)
			if info.Title != "Stub "+info.ID {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if len(ids) != 2 || ids[0] != "zz-stub-a" || ids[1] != "zz-stub-b" {
		t.Errorf("List() not sorted: %v", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", stubFactory("zz-dup"))

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", stubFactory("zz-dup"))
}
