package rlog

import (
	"testing"

	"go.uber.org/zap"
)

func TestInitWithFileConfigSetsLogAndSugar(t *testing.T) {
	if err := InitWithFileConfig("debug", FileConfig{}, false); err != nil {
		t.Fatalf("InitWithFileConfig() error = %v", err)
	}
	if Log == nil {
		t.Fatal("Log is nil after InitWithFileConfig")
	}
	if Sugar == nil {
		t.Fatal("Sugar is nil after InitWithFileConfig")
	}
	Info("scene loaded")
	Sync()
}

// WarnScene and friends must never panic on the package's default
// logger, i.e. before any caller has invoked Init/InitWithFileConfig.
func TestDefaultLoggerIsUsableWithoutInit(t *testing.T) {
	Log, Sugar = zap.NewNop(), zap.NewNop().Sugar()
	WarnScene("scene has no billboards")
	Warn("generic warning")
	Info("generic info")
	Sync()
}

func TestParseLevelUnknownDefaultsToInfo(t *testing.T) {
	if lvl := parseLevel("nonsense"); lvl.String() != "info" {
		t.Errorf("parseLevel(nonsense) = %v, want info", lvl)
	}
}
