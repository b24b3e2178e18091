package logger

import (
	"log/slog"
	"testing"
)

// The component loggers must be usable by library consumers that construct
// storages directly and never run Init.
func TestComponentLoggersAvailableBeforeInit(t *testing.T) {
	for name, logg := range map[string]*slog.Logger{
		"L":     L,
		"DB":    DB,
		"MIG":   MIG,
		"TG":    TG,
		"Store": Store,
		"Users": Users,
	} {
		if logg == nil {
			t.Fatalf("logger.%s is nil before Init", name)
		}
	}

	// Must not panic without Init having run.
	Store.Debug("ping", "status", "ok")
	Info(Background(), "fsm.storage", "test.event")
}

func TestComponentScopesBase(t *testing.T) {
	if Component("") != L {
		t.Fatal("empty component should return the base logger")
	}
	if Component("db") == nil {
		t.Fatal("Component should never return nil once the base logger is wired")
	}
}
