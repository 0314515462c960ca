package ffi

import (
	"sync"
	"testing"
)

func mustCreate(t *testing.T, config Config) Handle {
	t.Helper()
	h, res := Create(config)
	if res != Success {
		t.Fatalf("Create(%v) = %v, want Success", config, res)
	}
	if h == 0 {
		t.Fatal("Create returned zero handle with Success")
	}
	return h
}

func TestLifecycle(t *testing.T) {
	h := mustCreate(t, S2T)

	out, res := Convert(h, "头发")
	if res != Success {
		t.Fatalf("Convert = %v, want Success", res)
	}
	if out != "頭髮" {
		t.Errorf("Convert = %q, want 頭髮", out)
	}

	if res := Destroy(h); res != Success {
		t.Errorf("Destroy = %v, want Success", res)
	}
}

func TestCreateAllConfigs(t *testing.T) {
	for c := Config(0); c < numConfigs; c++ {
		t.Run(c.Name(), func(t *testing.T) {
			h := mustCreate(t, c)
			defer Destroy(h)

			out, res := Convert(h, "hello")
			if res != Success {
				t.Fatalf("Convert = %v, want Success", res)
			}
			if out != "hello" {
				t.Errorf("Convert(hello) = %q, want passthrough", out)
			}
		})
	}
}

func TestCreateInvalidConfig(t *testing.T) {
	for _, c := range []Config{-1, numConfigs, 1000} {
		h, res := Create(c)
		if res != InvalidArgument {
			t.Errorf("Create(%d) = %v, want InvalidArgument", int32(c), res)
		}
		if h != 0 {
			t.Errorf("Create(%d) handle = %d, want 0", int32(c), h)
		}
	}
}

func TestInvalidHandle(t *testing.T) {
	if _, res := Convert(0, "x"); res != InvalidHandle {
		t.Errorf("Convert(0) = %v, want InvalidHandle", res)
	}
	if _, res := Convert(1<<40, "x"); res != InvalidHandle {
		t.Errorf("Convert(bogus) = %v, want InvalidHandle", res)
	}
	if res := Destroy(1 << 40); res != InvalidHandle {
		t.Errorf("Destroy(bogus) = %v, want InvalidHandle", res)
	}
}

func TestStaleHandle(t *testing.T) {
	h := mustCreate(t, T2S)
	if res := Destroy(h); res != Success {
		t.Fatalf("Destroy = %v", res)
	}

	if _, res := Convert(h, "頭髮"); res != InvalidHandle {
		t.Errorf("Convert after destroy = %v, want InvalidHandle", res)
	}
	if res := Destroy(h); res != InvalidHandle {
		t.Errorf("second Destroy = %v, want InvalidHandle", res)
	}
}

func TestHandlesNotReused(t *testing.T) {
	a := mustCreate(t, S2T)
	Destroy(a)
	b := mustCreate(t, S2T)
	defer Destroy(b)
	if a == b {
		t.Errorf("handle %d was reused after destroy", a)
	}
}

func TestConcurrentConvert(t *testing.T) {
	h := mustCreate(t, S2T)
	defer Destroy(h)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				out, res := Convert(h, "干杯")
				if res != Success || out != "乾杯" {
					t.Errorf("Convert = %q, %v", out, res)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFailureIsolation(t *testing.T) {
	h := mustCreate(t, S2T)
	defer Destroy(h)

	if _, res := Create(Config(99)); res != InvalidArgument {
		t.Fatalf("Create(99) = %v, want InvalidArgument", res)
	}

	out, res := Convert(h, "汉")
	if res != Success || out != "漢" {
		t.Errorf("engine broken after failed create: %q, %v", out, res)
	}
}

func TestPanicContainment(t *testing.T) {
	res := func() (res Result) {
		defer contain(&res)
		panic("fault inside the boundary")
	}()
	if res != InternalError {
		t.Errorf("contained panic = %v, want InternalError", res)
	}
}

func TestConfigName(t *testing.T) {
	tests := []struct {
		config Config
		want   string
	}{
		{S2T, "s2t"},
		{TW2SP, "tw2sp"},
		{T2JP, "t2jp"},
		{Config(-1), ""},
		{Config(numConfigs), ""},
	}
	for _, tt := range tests {
		if got := tt.config.Name(); got != tt.want {
			t.Errorf("Config(%d).Name() = %q, want %q", int32(tt.config), got, tt.want)
		}
	}

	if got := Config(99).String(); got != "Config(99)" {
		t.Errorf("String() = %q, want Config(99)", got)
	}
	if got := JP2T.String(); got != "jp2t" {
		t.Errorf("String() = %q, want jp2t", got)
	}
}

func TestResultString(t *testing.T) {
	tests := []struct {
		res  Result
		want string
	}{
		{Success, "Success"},
		{InvalidHandle, "InvalidHandle"},
		{InvalidArgument, "InvalidArgument"},
		{CreationFailed, "CreationFailed"},
		{InternalError, "InternalError"},
		{Result(42), "Result(42)"},
	}
	for _, tt := range tests {
		if got := tt.res.String(); got != tt.want {
			t.Errorf("Result(%d).String() = %q, want %q", int32(tt.res), got, tt.want)
		}
	}
}
