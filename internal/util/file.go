package util

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateImageExt 头像等图片上传只接受常见图片扩展名。
func ValidateImageExt(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		return fmt.Errorf("unsupported image extension %q", ext)
	}
	return nil
}

// GenerateRandomString 文件名去冲突用的随机十六进制串。
func GenerateRandomString(n int) string {
	b := make([]byte, (n+1)/2)
	rand.Read(b)
	return hex.EncodeToString(b)[:n]
}
