package sink

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"
)

// fakeS3 accepts PutObject requests and records the decoded bodies by path.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string]string
	types   map[string]string
	headers map[string]http.Header
	fail    bool
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail || req.Method != http.MethodPut {
		return &http.Response{StatusCode: http.StatusForbidden, Body: io.NopCloser(strings.NewReader(
			"<?xml version=\"1.0\"?><Error><Code>AccessDenied</Code><Message>denied</Message></Error>")),
			Header: http.Header{"Content-Type": {"application/xml"}}}, nil
	}

	body, _ := io.ReadAll(req.Body)
	if dec, ok := decodeChunked(body); ok {
		body = dec
	}
	f.objects[req.URL.Path] = string(body)
	f.types[req.URL.Path] = req.Header.Get("Content-Type")
	f.headers[req.URL.Path] = req.Header.Clone()
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(bytes.NewReader(nil)),
		Header: http.Header{"ETag": {"\"etag\""}}}, nil
}

// decodeChunked unwraps a single-chunk aws-chunked payload: <hex>\r\n<body>\r\n0\r\n...
func decodeChunked(b []byte) ([]byte, bool) {
	parts := strings.SplitN(string(b), "\r\n", 3)
	if len(parts) < 3 {
		return nil, false
	}
	size, err := strconv.ParseInt(strings.SplitN(parts[0], ";", 2)[0], 16, 64)
	if err != nil || int64(len(parts[1])) != size {
		return nil, false
	}
	return []byte(parts[1]), true
}

func newFakeS3Sink(t *testing.T, prefix string) (*S3, *fakeS3) {
	t.Helper()
	fake := &fakeS3{objects: make(map[string]string), types: make(map[string]string), headers: make(map[string]http.Header)}
	s, err := NewS3(context.Background(), S3Config{
		Bucket:          "dash-bucket",
		Prefix:          prefix,
		Region:          "eu-west-1",
		Endpoint:        "https://mock.s3.local",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		PathStyle:       true,
		HTTPClient:      &http.Client{Transport: fake},
	})
	if err != nil {
		t.Fatalf("NewS3 failed: %v", err)
	}
	return s, fake
}

func TestS3_Put(t *testing.T) {
	t.Parallel()

	s, fake := newFakeS3Sink(t, "/demo/")
	info, err := s.Put(context.Background(), "supply/orders.jsonl", strings.NewReader("{\"a\":1}\n"),
		PutOptions{ContentType: ContentTypeJSONL})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if info.Key != "demo/supply/orders.jsonl" || info.Location != "s3://dash-bucket/demo/supply/orders.jsonl" {
		t.Errorf("unexpected info: %+v", info)
	}
	const p = "/dash-bucket/demo/supply/orders.jsonl"
	if got := fake.objects[p]; got != "{\"a\":1}\n" {
		t.Errorf("stored body = %q (objects: %v)", got, fake.objects)
	}
	if fake.types[p] != ContentTypeJSONL {
		t.Errorf("content type = %q", fake.types[p])
	}
}

func TestS3_PutMetadata(t *testing.T) {
	t.Parallel()

	s, fake := newFakeS3Sink(t, "")
	_, err := s.Put(context.Background(), "quality/labs.jsonl", strings.NewReader("{}\n"), PutOptions{
		ContentType: ContentTypeJSONL,
		Metadata:    map[string]string{"run-id": "run-7", "seed": "42"},
	})
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	h := fake.headers["/dash-bucket/quality/labs.jsonl"]
	if got := h.Get("X-Amz-Meta-Run-Id"); got != "run-7" {
		t.Errorf("run-id metadata = %q", got)
	}
	if got := h.Get("X-Amz-Meta-Seed"); got != "42" {
		t.Errorf("seed metadata = %q", got)
	}
}

func TestS3_PutError(t *testing.T) {
	t.Parallel()

	s, fake := newFakeS3Sink(t, "")
	fake.fail = true
	if _, err := s.Put(context.Background(), "a.jsonl", strings.NewReader("x"), PutOptions{}); err == nil {
		t.Error("Put should surface the S3 error")
	}
}

func TestS3_RequiresBucket(t *testing.T) {
	t.Parallel()

	if _, err := NewS3(context.Background(), S3Config{}); err == nil {
		t.Error("NewS3 without bucket should fail")
	}
}
