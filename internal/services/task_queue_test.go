package services

import (
	"context"
	"testing"
	"time"
)

func TestSyncQueue_New(t *testing.T) {
	queue := NewSyncQueue()
	if queue == nil {
		t.Error("NewSyncQueue should not return nil")
	}
}

func TestSyncQueue_IsAsync(t *testing.T) {
	queue := NewSyncQueue()
	if queue.IsAsync() {
		t.Error("SyncQueue.IsAsync() should return false")
	}
}

func TestSyncQueue_Close(t *testing.T) {
	queue := NewSyncQueue()
	if err := queue.Close(); err != nil {
		t.Errorf("SyncQueue.Close() should return nil, got %v", err)
	}
}

func TestSyncQueue_EnqueueWithoutProcessor(t *testing.T) {
	queue := NewSyncQueue()
	task := &NotificationTask{Type: TaskTypeContributorApproved, ContributorID: "abc"}

	if err := queue.Enqueue(task); err != nil {
		t.Errorf("Enqueue without processor should not error, got %v", err)
	}
}

func TestSyncQueue_ProcessorReceivesTask(t *testing.T) {
	queue := NewSyncQueue()

	done := make(chan *NotificationTask, 1)
	queue.SetProcessor(func(ctx context.Context, task *NotificationTask) error {
		done <- task
		return nil
	})

	if err := queue.Enqueue(&NotificationTask{Type: TaskTypeSubmissionReceived, SubmissionID: "sub-1"}); err != nil {
		t.Fatalf("Enqueue failed: %v", err)
	}

	select {
	case task := <-done:
		if task.Type != TaskTypeSubmissionReceived {
			t.Errorf("Type = %q, expected %q", task.Type, TaskTypeSubmissionReceived)
		}
		if task.SubmissionID != "sub-1" {
			t.Errorf("SubmissionID = %q, expected %q", task.SubmissionID, "sub-1")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("processor was never invoked")
	}
}

func TestAsyncQueue_IsAsync(t *testing.T) {
	queue := &AsyncQueue{}
	if !queue.IsAsync() {
		t.Error("AsyncQueue.IsAsync() should return true")
	}
}
