package core

import "testing"

func TestBuildOwner_OnNeedsFrameFiresOncePerDirtyElement(t *testing.T) {
	owner := NewBuildOwner()
	frames := 0
	owner.OnNeedsFrame = func() { frames++ }

	root := MountRoot(testStatefulWidget{}, owner)

	frames = 0
	root.MarkNeedsBuild()
	root.MarkNeedsBuild()

	if frames != 1 {
		t.Errorf("expected 1 frame request for a coalesced dirty element, got %d", frames)
	}
}

func TestBuildOwner_ScheduleUpdateRequestsFrame(t *testing.T) {
	owner := NewBuildOwner()
	frames := 0
	owner.OnNeedsFrame = func() { frames++ }

	owner.ScheduleUpdate(nil, func() {})

	if frames != 1 {
		t.Errorf("expected 1 frame request after ScheduleUpdate, got %d", frames)
	}
}

func TestBuildOwner_FlushUpdatesDropsUnmountedElements(t *testing.T) {
	owner := NewBuildOwner()
	root := MountRoot(testStatefulWidget{}, owner)
	owner.FlushBuild()

	applied := false
	owner.ScheduleUpdate(root, func() { applied = true }, func() {})
	root.Unmount()

	done := owner.FlushUpdates()
	if applied {
		t.Error("update for an unmounted element must not apply")
	}
	if len(done) != 0 {
		t.Errorf("expected no callbacks for a dropped update, got %d", len(done))
	}
}

func TestBuildOwner_FlushBuildRebuildsInDepthOrder(t *testing.T) {
	owner := NewBuildOwner()

	var rebuilt []string
	innerState := &testState{}
	inner := testStatefulWidget{
		createStateFn: func() State { return innerState },
	}
	outer := testStatelessWidget{
		buildFn: func(ctx BuildContext) Widget {
			rebuilt = append(rebuilt, "outer")
			return inner
		},
	}
	innerState.buildFn = func(ctx BuildContext) Widget {
		rebuilt = append(rebuilt, "inner")
		return nil
	}

	root := MountRoot(outer, owner)
	child := childOf(t, root)

	rebuilt = nil
	// Schedule deeper element first; depth ordering must rebuild the root first.
	child.MarkNeedsBuild()
	root.MarkNeedsBuild()
	owner.FlushBuild()

	if len(rebuilt) < 2 || rebuilt[0] != "outer" {
		t.Errorf("expected root to rebuild before its child, got %v", rebuilt)
	}
}

func TestBuildOwner_NeedsWork(t *testing.T) {
	owner := NewBuildOwner()
	if owner.NeedsWork() {
		t.Error("fresh owner must not need work")
	}

	owner.ScheduleUpdate(nil, func() {})
	if !owner.NeedsWork() {
		t.Error("owner with pending update must need work")
	}

	owner.FlushUpdates()
	owner.FlushBuild()
	if owner.NeedsWork() {
		t.Error("flushed owner must not need work")
	}
}
