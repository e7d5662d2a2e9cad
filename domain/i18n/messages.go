package i18n

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys looked up in the localization resource.
const (
	KeyTitle      = "title"
	KeyLoadFile   = "load_file"
	KeyScreenshot = "screenshot"
	KeyReset      = "reset"
	KeyConfirm    = "confirm"
	KeyQuit       = "quit"

	KeyScreenshotOK     = "screenshot_ok"
	KeyScreenshotFailed = "screenshot_failed"
	KeySaveOK           = "save_ok"
	KeySaveFailed       = "save_failed"
	KeyQuitOK           = "quit_ok"
	KeyQuitFailed       = "quit_failed"
)

var defaults = map[string]string{
	KeyTitle:      "Custom item crop",
	KeyLoadFile:   "Load image",
	KeyScreenshot: "Screenshot",
	KeyReset:      "Reset",
	KeyConfirm:    "Confirm",
	KeyQuit:       "Quit",

	KeyScreenshotOK:     "Captured the game window screenshot",
	KeyScreenshotFailed: "Failed to capture the game window screenshot",
	KeySaveOK:           "Saved the custom item image. To continue the transfer, click 'Quit to workflow'",
	KeySaveFailed:       "Failed to save the custom item image",
	KeyQuitOK:           "Session closed, please close this window",
	KeyQuitFailed:       "Failed to quit",
}

// Built-in texts for Chinese, the backend's own language.
var defaultsZH = map[string]string{
	KeyTitle:      "自定义物品截图",
	KeyLoadFile:   "选择图片",
	KeyScreenshot: "截图",
	KeyReset:      "重置",
	KeyConfirm:    "确认",
	KeyQuit:       "退出至流程",

	KeyScreenshotOK:     "成功获取游戏窗口截图",
	KeyScreenshotFailed: "获取游戏窗口截图失败",
	KeySaveOK:           "已保存自定义物品截图，继续搬运流程请点击'退出至流程'",
	KeySaveFailed:       "自定义物品截图保存失败",
	KeyQuitOK:           "退出成功，请关闭本界面",
	KeyQuitFailed:       "退出失败",
}

var zhBase, _ = language.Chinese.Base()

// builtin returns the built-in texts for tag: Chinese for any zh variant,
// English otherwise.
func builtin(tag language.Tag) map[string]string {
	if base, _ := tag.Base(); base == zhBase {
		return defaultsZH
	}
	return defaults
}

// Catalog resolves message keys for one language.
type Catalog struct {
	printer *message.Printer
}

// NewCatalog builds a catalog for tag from translations. Keys without a
// translation use the built-in text for tag. Messages that cannot be
// registered are reported in the error; the catalog is usable regardless and
// falls back to the key for them.
func NewCatalog(tag language.Tag, translations map[string]string) (*Catalog, error) {
	b := catalog.NewBuilder(catalog.Fallback(tag))
	var errs []error
	for key, def := range builtin(tag) {
		msg := def
		if t, ok := translations[key]; ok && strings.TrimSpace(t) != "" {
			msg = t
		}
		// Messages are plain text; escape verbs so translations print verbatim.
		if err := b.SetString(tag, key, strings.ReplaceAll(msg, "%", "%%")); err != nil {
			errs = append(errs, fmt.Errorf("message %q: %w", key, err))
		}
	}
	return &Catalog{printer: message.NewPrinter(tag, message.Catalog(b))}, errors.Join(errs...)
}

// T returns the message for key, or key itself when unknown.
func (c *Catalog) T(key string) string {
	if c == nil || c.printer == nil {
		if d, ok := defaults[key]; ok {
			return d
		}
		return key
	}
	return c.printer.Sprintf(key)
}

// Captions returns the translated widget captions keyed by message key.
func (c *Catalog) Captions() map[string]string {
	keys := []string{KeyTitle, KeyLoadFile, KeyScreenshot, KeyReset, KeyConfirm, KeyQuit}
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		out[k] = c.T(k)
	}
	return out
}
