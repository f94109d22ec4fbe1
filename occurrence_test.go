package hebtok

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func occurrenceList(docIDs ...DocumentID) OccurrenceList {
	var head *Occurrences
	for i := len(docIDs) - 1; i >= 0; i-- {
		head = NewOccurrences(docIDs[i], []uint64{uint64(i)}, head)
	}
	return NewOccurrenceList(head)
}

func documentIDs(l OccurrenceList) []DocumentID {
	var ids []DocumentID
	for o := l.Occurrences; o != nil; o = o.Next {
		ids = append(ids, o.DocumentID)
	}
	return ids
}

func TestMerge(t *testing.T) {
	cases := []struct {
		origin OccurrenceList
		target OccurrenceList
		want   []DocumentID
	}{
		{
			origin: occurrenceList(1, 3, 5),
			target: occurrenceList(2, 4),
			want:   []DocumentID{1, 2, 3, 4, 5},
		},
		{
			origin: occurrenceList(4, 5),
			target: occurrenceList(1, 2),
			want:   []DocumentID{1, 2, 4, 5},
		},
		// documents present in both appear once
		{
			origin: occurrenceList(1, 2),
			target: occurrenceList(2, 3),
			want:   []DocumentID{1, 2, 3},
		},
		{
			origin: occurrenceList(),
			target: occurrenceList(1, 2),
			want:   []DocumentID{1, 2},
		},
		{
			origin: occurrenceList(1, 2),
			target: occurrenceList(),
			want:   []DocumentID{1, 2},
		},
		{
			origin: occurrenceList(),
			target: occurrenceList(),
			want:   nil,
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("want = %v", tt.want), func(t *testing.T) {
			got := documentIDs(merge(tt.origin, tt.target))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("merge() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOccurrenceList_Frequency(t *testing.T) {
	cases := []struct {
		list OccurrenceList
		want int
	}{
		{list: NewOccurrenceList(nil), want: 0},
		{list: NewOccurrenceList(NewOccurrences(1, []uint64{0, 4}, nil)), want: 2},
		{
			list: NewOccurrenceList(NewOccurrences(1, []uint64{0, 4},
				NewOccurrences(2, []uint64{7}, nil))),
			want: 3,
		},
	}
	for _, tt := range cases {
		t.Run(fmt.Sprintf("want = %v", tt.want), func(t *testing.T) {
			if got := tt.list.Frequency(); got != tt.want {
				t.Errorf("OccurrenceList.Frequency() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOccurrences_PushBack(t *testing.T) {
	head := NewOccurrences(1, []uint64{0}, NewOccurrences(3, []uint64{0}, nil))
	head.PushBack(NewOccurrences(2, []uint64{0}, nil))
	got := documentIDs(NewOccurrenceList(head))
	if diff := cmp.Diff([]DocumentID{1, 2, 3}, got); diff != "" {
		t.Errorf("PushBack() mismatch (-want +got):\n%s", diff)
	}
}
