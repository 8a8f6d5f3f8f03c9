package testing

import "testing"

func TestRecorder_Order(t *testing.T) {
	rec := &Recorder{}
	inner := 0
	loadMore := rec.WrapLoadMore(func() { inner++ })
	refresh := rec.WrapRefresh(func(func()) {})

	loadMore()
	refresh(func() {})
	loadMore()

	if inner != 2 {
		t.Errorf("inner loadMore = %d, want 2", inner)
	}
	if rec.LoadMoreCount() != 2 || rec.RefreshCount() != 1 {
		t.Errorf("counts = %d/%d, want 2/1", rec.LoadMoreCount(), rec.RefreshCount())
	}
	calls := rec.Calls()
	if len(calls) != 3 || calls[1] != CallRefresh {
		t.Errorf("calls = %v", calls)
	}
	if calls[0].String() != "loadMore" || calls[1].String() != "onRefresh" {
		t.Errorf("call names = %v", calls)
	}
}

func TestRecorder_WrapRefreshNil(t *testing.T) {
	rec := &Recorder{}
	if rec.WrapRefresh(nil) != nil {
		t.Error("wrapping a nil refresh must stay nil")
	}
	rec.WrapLoadMore(nil)()
	if rec.LoadMoreCount() != 1 {
		t.Errorf("LoadMoreCount() = %d, want 1", rec.LoadMoreCount())
	}
}

func TestRecorder_CompleteRefreshes(t *testing.T) {
	rec := &Recorder{}
	refresh := rec.WrapRefresh(func(func()) {})
	done := 0
	refresh(func() { done++ })
	refresh(func() { done++ })

	if n := rec.CompleteRefreshes(); n != 2 {
		t.Errorf("CompleteRefreshes() = %d, want 2", n)
	}
	if done != 2 {
		t.Errorf("done calls = %d, want 2", done)
	}
	if n := rec.CompleteRefreshes(); n != 0 {
		t.Errorf("second CompleteRefreshes() = %d, want 0", n)
	}

	rec.Reset()
	if len(rec.Calls()) != 0 {
		t.Error("Reset should clear calls")
	}
}
