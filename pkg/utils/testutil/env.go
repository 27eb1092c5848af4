package testutil

import (
	"os"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/vitalsink/pkg/domain/model"
)

func LoadEnv(t *testing.T, key string) string {
	t.Helper()
	value, ok := os.LookupEnv(key)
	if !ok {
		t.Skipf("Environment variable %s is not set", key)
	}
	return value
}

// LoadTableRef reads a project.dataset.table reference from key, skipping the test if unset.
func LoadTableRef(t *testing.T, key string) model.TableRef {
	t.Helper()
	return gt.R1(model.ParseTableRef(LoadEnv(t, key))).NoError(t)
}
