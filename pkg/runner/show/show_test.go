package show

import (
	"context"
	"strings"
	"testing"
)

type testConfig struct {
	root string
}

func (c *testConfig) Root() string         { return c.root }
func (c *testConfig) Categories() []string { return nil }
func (c *testConfig) Message() string      { return "" }

func TestShowWithoutAggregate(t *testing.T) {
	n := &Show{Config: &testConfig{root: t.TempDir()}}
	err := n.Do(context.Background())
	if err == nil {
		t.Fatalf("expected error when no aggregate document exists")
	}
	if !strings.Contains(err.Error(), "jlog aggregate") {
		t.Fatalf("error should point at the aggregate command: %v", err)
	}
}
