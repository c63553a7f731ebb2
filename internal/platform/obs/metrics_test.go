package obs

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestOnlyOperationMetricsRegistered(t *testing.T) {
	func() (err error) {
		defer Time(context.Background(), "test.op")(&err)
		return errors.New("boom")
	}()

	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}

	var sawOp bool
	for _, f := range families {
		name := f.GetName()
		if strings.HasPrefix(name, "radiogarden_http_") {
			t.Errorf("server metric %s registered by obs", name)
		}
		if name == "radiogarden_op_duration_seconds" {
			sawOp = true
		}
	}
	if !sawOp {
		t.Fatal("radiogarden_op_duration_seconds not registered")
	}
}
