package embedded

import (
	"testing"
	"testing/fstest"
)

// resetForTest 重置包状态，测试结束时恢复
func resetForTest(t *testing.T) {
	t.Helper()
	prevFS, prevInit := dataFS, initialized
	dataFS, initialized = nil, false
	t.Cleanup(func() {
		dataFS, initialized = prevFS, prevInit
	})
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest(t)

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{})
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false after Init(nil)")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetForTest(t)

	_, err := ReadFile("data/ballstorm.yaml")
	if err == nil {
		t.Fatal("Expected error when calling ReadFile() before Init()")
	}
	if err.Error() != "embedded package not initialized, call Init() first" {
		t.Errorf("Unexpected error message: %v", err)
	}
}

// TestReadFile 测试读取、路径标准化与前缀检查
func TestReadFile(t *testing.T) {
	resetForTest(t)
	Init(fstest.MapFS{
		"data/ballstorm.yaml": &fstest.MapFile{Data: []byte("window:\n  title: x\n")},
	})

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "plain path", path: "data/ballstorm.yaml"},
		{name: "dot prefix", path: "./data/ballstorm.yaml"},
		{name: "missing file", path: "data/missing.yaml", wantErr: true},
		{name: "unknown prefix", path: "assets/ball.png", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != "window:\n  title: x\n" {
				t.Errorf("ReadFile(%q) = %q", tt.path, data)
			}
		})
	}

	if !Exists("data/ballstorm.yaml") {
		t.Error("Exists(data/ballstorm.yaml) = false")
	}
	if Exists("data/missing.yaml") {
		t.Error("Exists(data/missing.yaml) = true")
	}
}
