package a2a

import "testing"

func TestTaskStoreCountsTransitions(t *testing.T) {
	store := NewTaskStore()

	// The updater mutates one task in place and re-saves it; the counters
	// must still see each transition.
	done := NewTaskUpdater(store, "t1", "c1")
	done.StartWork()
	done.Complete(nil)

	failed := NewTaskUpdater(store, "t2", "c1")
	failed.StartWork()
	failed.UpdateStatus(TaskStateFailed, nil)

	submitted, completed, failedN := store.Stats()
	if submitted != 2 {
		t.Errorf("submitted = %d, want 2", submitted)
	}
	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}
	if failedN != 1 {
		t.Errorf("failed = %d, want 1", failedN)
	}
}

func TestTaskStoreCompleteCountedOnce(t *testing.T) {
	store := NewTaskStore()
	updater := NewTaskUpdater(store, "t1", "c1")
	updater.Complete(nil)
	updater.AddArtifact("extra", TextPart("late artifact"))

	_, completed, _ := store.Stats()
	if completed != 1 {
		t.Errorf("completed = %d, want 1 after re-save in the same state", completed)
	}
}

func TestTaskStoreSnapshots(t *testing.T) {
	store := NewTaskStore()
	updater := NewTaskUpdater(store, "t1", "c1")
	updater.StartWork()

	got := store.Get("t1")
	if got.Status.State != TaskStateWorking {
		t.Fatalf("state = %q", got.Status.State)
	}

	// Later mutations must not leak into an already-fetched task.
	updater.AddArtifact("result", TextPart("payload"))
	updater.Complete(nil)
	if len(got.Artifacts) != 0 || got.Status.State != TaskStateWorking {
		t.Error("fetched task changed after later saves")
	}

	fresh := store.Get("t1")
	if fresh.Status.State != TaskStateCompleted || len(fresh.Artifacts) != 1 {
		t.Errorf("fresh fetch state=%q artifacts=%d", fresh.Status.State, len(fresh.Artifacts))
	}
}
