package i18n

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"
)

func TestResolveLanguage(t *testing.T) {
	tag, name := ResolveLanguage(" zh-CN ", nil)
	if name != "zh-cn" || tag != language.MustParse("zh-CN") {
		t.Fatalf("unexpected %v %q", tag, name)
	}
	tag, name = ResolveLanguage("not a language!", nil)
	if name != DefaultLanguage || tag != language.MustParse(DefaultLanguage) {
		t.Fatalf("expected default fallback, got %v %q", tag, name)
	}
	if _, name = ResolveLanguage("", nil); name != DefaultLanguage {
		t.Fatalf("expected default for empty value, got %q", name)
	}
}

func TestLoader_Load(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/en.json":
			w.Write([]byte(`{"title":"Crop","count":3}`))
		case "/broken.json":
			w.Write([]byte(`{"title":`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	l := NewLoader(srv.Client(), nil)

	m := l.Load(context.Background(), srv.URL+"/en.json")
	if m["title"] != "Crop" {
		t.Fatalf("expected title, got %v", m)
	}
	if _, ok := m["count"]; ok {
		t.Fatalf("non-string values must be skipped")
	}
	if m := l.Load(context.Background(), srv.URL+"/broken.json"); len(m) != 0 {
		t.Fatalf("parse failure should give empty map, got %v", m)
	}
	if m := l.Load(context.Background(), srv.URL+"/missing.json"); len(m) != 0 {
		t.Fatalf("404 should give empty map, got %v", m)
	}
	if m := l.Load(context.Background(), "http://127.0.0.1:0/none.json"); m == nil || len(m) != 0 {
		t.Fatalf("network failure should give empty map, got %v", m)
	}
}

func TestCatalog_TranslationsAndDefaults(t *testing.T) {
	tag := language.MustParse("zh-CN")
	c, err := NewCatalog(tag, map[string]string{KeySaveFailed: "保存失败 100%"})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if got := c.T(KeySaveFailed); got != "保存失败 100%" {
		t.Fatalf("unexpected translation %q", got)
	}
	if got := c.T(KeyQuitFailed); got != "退出失败" {
		t.Fatalf("expected chinese built-in text, got %q", got)
	}
	if got := c.T("unknown_key"); got != "unknown_key" {
		t.Fatalf("unknown key should echo, got %q", got)
	}
	caps := c.Captions()
	if len(caps) != 6 || caps[KeyConfirm] != defaultsZH[KeyConfirm] {
		t.Fatalf("unexpected captions %v", caps)
	}
}

func TestCatalog_BuiltinTextFollowsLanguage(t *testing.T) {
	cases := []struct {
		tag  language.Tag
		want string
	}{
		{language.MustParse("zh-cn"), "获取游戏窗口截图失败"},
		{language.MustParse("zh-TW"), "获取游戏窗口截图失败"},
		{language.English, defaults[KeyScreenshotFailed]},
		{language.Japanese, defaults[KeyScreenshotFailed]},
	}
	for _, tc := range cases {
		c, err := NewCatalog(tc.tag, nil)
		if err != nil {
			t.Fatalf("%v: %v", tc.tag, err)
		}
		if got := c.T(KeyScreenshotFailed); got != tc.want {
			t.Fatalf("%v: got %q want %q", tc.tag, got, tc.want)
		}
	}
	for key := range defaults {
		if defaultsZH[key] == "" {
			t.Fatalf("missing chinese text for %q", key)
		}
	}
}

func TestCatalog_NilUsesDefaults(t *testing.T) {
	var c *Catalog
	if got := c.T(KeyQuitOK); got != defaults[KeyQuitOK] {
		t.Fatalf("nil catalog should use defaults, got %q", got)
	}
}
