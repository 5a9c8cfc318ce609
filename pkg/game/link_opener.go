package game

import (
	"fmt"
	"log"
	"net/url"

	"github.com/pkg/browser"
)

// LinkOpener 打开外部链接
type LinkOpener interface {
	Open(rawURL string) error
}

// ValidateURL 检查链接是否可以交给系统浏览器
// 只接受 http/https 绝对地址
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q in %q", u.Scheme, rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("url %q has no host", rawURL)
	}
	return nil
}

// BrowserOpener 使用系统默认浏览器打开链接
type BrowserOpener struct{}

// Open 校验后打开链接
func (BrowserOpener) Open(rawURL string) error {
	if err := ValidateURL(rawURL); err != nil {
		return err
	}
	if err := browser.OpenURL(rawURL); err != nil {
		return fmt.Errorf("failed to open %s: %w", rawURL, err)
	}
	log.Printf("[LinkOpener] 打开链接: %s", rawURL)
	return nil
}

// RecordingOpener 只记录打开过的链接，不访问系统浏览器
type RecordingOpener struct {
	Opened []string
	Err    error // 非 nil 时 Open 返回此错误
}

// Open 记录链接
func (r *RecordingOpener) Open(rawURL string) error {
	if r.Err != nil {
		return r.Err
	}
	if err := ValidateURL(rawURL); err != nil {
		return err
	}
	r.Opened = append(r.Opened, rawURL)
	return nil
}
