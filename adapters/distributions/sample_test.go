package distributions

import (
	"testing"

	"statplug/domain/core"
)

func TestSample_EnforcesDrawCap(t *testing.T) {
	c := NewCatalog()
	d, err := c.Construct(KindNormal, nil)
	if err != nil {
		t.Fatal(err)
	}

	draws, err := Sample(d, 10, 1, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(draws) != 10 {
		t.Errorf("got %d draws", len(draws))
	}

	if _, err := Sample(d, 101, 1, 100); !core.IsInvalidInput(err) {
		t.Errorf("over the cap: got %v", err)
	}
	if _, err := Sample(d, 0, 1, 100); !core.IsInvalidInput(err) {
		t.Errorf("zero draws: got %v", err)
	}
}
