package intercept

import (
	"context"
	"errors"
	"strings"
	"testing"

	http "github.com/bogdanfinn/fhttp"
)

// fakeDispatcher 记录每个派发点收到的入参
type fakeDispatcher struct {
	fetchCalls     int
	lastFetchInput any
	lastOpenURL    any
	lastPushURL    any
	lastReplaceURL any
	fetchErr       error
}

func (f *fakeDispatcher) Fetch(_ context.Context, input any) (*http.Response, error) {
	f.fetchCalls++
	f.lastFetchInput = input
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return &http.Response{StatusCode: http.StatusOK}, nil
}

func (f *fakeDispatcher) Open(_ context.Context, method string, u any) (*http.Request, error) {
	f.lastOpenURL = u
	return nil, nil
}

func (f *fakeDispatcher) PushState(_ context.Context, state any, title string, u any) error {
	f.lastPushURL = u
	return nil
}

func (f *fakeDispatcher) ReplaceState(_ context.Context, state any, title string, u any) error {
	f.lastReplaceURL = u
	return nil
}

func tradToSimp(s string) string {
	s = strings.ReplaceAll(s, "繁體字", "繁体字")
	s = strings.ReplaceAll(s, "頁面", "页面")
	return s
}

func TestInstall_RewritesStringURLOnAllFourPoints(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDispatcher{}
	d := Install(fake, tradToSimp)

	if _, err := d.Fetch(ctx, "/search?q=繁體字"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fake.lastFetchInput != "/search?q=繁体字" {
		t.Fatalf("fetch input = %v", fake.lastFetchInput)
	}

	if _, err := d.Open(ctx, "GET", "/頁面"); err != nil {
		t.Fatalf("open: %v", err)
	}
	if fake.lastOpenURL != "/页面" {
		t.Fatalf("open url = %v", fake.lastOpenURL)
	}

	if err := d.PushState(ctx, nil, "", "/頁面"); err != nil {
		t.Fatalf("push: %v", err)
	}
	if fake.lastPushURL != "/页面" {
		t.Fatalf("push url = %v", fake.lastPushURL)
	}

	if err := d.ReplaceState(ctx, nil, "", "/頁面"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if fake.lastReplaceURL != "/页面" {
		t.Fatalf("replace url = %v", fake.lastReplaceURL)
	}
}

func TestInstall_NonStringInputPassesThroughUntouched(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDispatcher{}
	d := Install(fake, tradToSimp)

	req, err := http.NewRequest(http.MethodGet, "https://www.olevod.com/頁面", nil)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if _, err := d.Fetch(ctx, req); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fake.lastFetchInput != any(req) {
		t.Fatal("request object was not passed through identically")
	}

	state := &struct{ x int }{1}
	if err := d.PushState(ctx, nil, "", state); err != nil {
		t.Fatalf("push: %v", err)
	}
	if fake.lastPushURL != any(state) {
		t.Fatal("non-string url argument was not passed through identically")
	}
}

func TestInstall_SingleInstallation(t *testing.T) {
	fake := &fakeDispatcher{}
	d := Install(fake, tradToSimp)
	d2 := Install(d, tradToSimp)
	if d != d2 {
		t.Fatal("second install produced a new wrapper")
	}
}

func TestActivate_Idempotent(t *testing.T) {
	ctx := context.Background()
	prev := Default()
	defer SetDefault(prev)

	fake := &fakeDispatcher{}
	SetDefault(fake)

	suffix := func(s string) string { return s + "!" }
	Activate(suffix)
	Activate(suffix)

	if _, err := Default().Fetch(ctx, "u"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fake.fetchCalls != 1 {
		t.Fatalf("original implementation invoked %d times, want 1", fake.fetchCalls)
	}
	if fake.lastFetchInput != "u!" {
		t.Fatalf("fetch input = %v, want single rewrite", fake.lastFetchInput)
	}
}

func TestInstall_ErrorsPropagateUnmodified(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("上游挂了")
	fake := &fakeDispatcher{fetchErr: boom}
	d := Install(fake, tradToSimp)

	if _, err := d.Fetch(ctx, "/x"); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want original error", err)
	}
}

func TestDefault_PristineBeforeActivation(t *testing.T) {
	prev := Default()
	defer SetDefault(prev)

	fake := &fakeDispatcher{}
	SetDefault(fake)
	if _, ok := Default().(*interceptor); ok {
		t.Fatal("dispatcher wrapped without activation")
	}
}
