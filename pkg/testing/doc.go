// Package testing provides a list testing harness for infinitelist.
//
// # Quick Start
//
// Create a tester, mount a list, and assert on the triggers it fired:
//
//	func TestFeed(t *testing.T) {
//	    tester := listtest.NewListTesterWithT[string, string](t)
//	    tester.SetManualVisibility(true)
//	    tester.Mount(cfg)
//
//	    tester.Show("C")
//	    if got := tester.Recorder().LoadMoreCount(); got != 2 {
//	        t.Errorf("loadMore = %d, want 2", got)
//	    }
//	}
//
// # Finders
//
// Finders match instantiated entries:
//
//	tester.Find(listtest.ByLoading()).Exists()
//	tester.Find(listtest.ByItem("C")).First().Index
//
// # Snapshot Testing
//
// Capture and compare frame snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/feed.snapshot.json")
//
// Update snapshots with:
//
//	INFINITELIST_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import listtest "github.com/go-drift/infinitelist/pkg/testing"
package testing
