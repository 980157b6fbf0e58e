package embedded

import (
	"testing"
	"testing/fstest"
)

// testFS 测试用的内存文件系统
func testFS() fstest.MapFS {
	return fstest.MapFS{
		"assets/config/battle.yaml":         {Data: []byte("food: 4\n")},
		"assets/sprites/battle/soul.png":    {Data: []byte{0x89, 'P', 'N', 'G'}},
		"assets/sprites/battle/slash-1.png": {Data: []byte{0x89, 'P', 'N', 'G'}},
	}
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	Init(nil)
	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false with nil FS")
	}

	Init(testFS())
	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}

	Init(nil)
}

// TestNotInitialized 测试未初始化时的所有访问函数
func TestNotInitialized(t *testing.T) {
	Init(nil)

	if _, err := ReadFile("assets/test.txt"); err != errNotInitialized {
		t.Errorf("ReadFile: expected errNotInitialized, got %v", err)
	}
}

// TestPathNormalization 测试路径标准化与前缀检查
func TestPathNormalization(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"标准路径", "assets/config/battle.yaml", false},
		{"带 ./ 前缀", "./assets/config/battle.yaml", false},
		{"未知前缀", "data/battle.yaml", true},
		{"绝对路径", "/assets/config/battle.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

// TestReadFileContent 测试读取内容
func TestReadFileContent(t *testing.T) {
	Init(testFS())
	defer Init(nil)

	data, err := ReadFile("assets/config/battle.yaml")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "food: 4\n" {
		t.Errorf("Unexpected content: %q", data)
	}

	if _, err := ReadFile("assets/missing.png"); err == nil {
		t.Error("Expected error for missing file")
	}
}
