package agenda

import (
	"citamed-service/internal/pkg/clinic_dto"
)

// Policy selects how a candidate is matched against existing agendas on the
// same date. The single-date creation path forbids a second agenda on a day
// regardless of time; the recurring path only rejects interval overlap.
type Policy string

const (
	PolicyDuplicateByDate   Policy = "duplicateByDate"
	PolicyOverlapByInterval Policy = "overlapByInterval"
)

type Classification string

const (
	Bookable      Classification = "bookable"
	DuplicateDate Classification = "duplicateDate"
	Overlapping   Classification = "overlapping"
)

type ClassifiedSlot struct {
	Slot           *clinic_dto.Agenda
	Classification Classification
}

type ReconcileResult struct {
	Slots            []ClassifiedSlot
	Created          int
	SkippedOverlap   int
	SkippedDuplicate int
}

// Reconcile classifies every candidate from the sequence against the
// existing agendas of the same doctor. Existing agendas are fetched once by
// the caller; this function never touches the network and never persists.
// Candidates accepted earlier in the sequence also count as existing for the
// ones that follow, so a recurring batch cannot overlap itself.
func Reconcile(seq *SlotSeq, existing []clinic_dto.Agenda, policy Policy) (*ReconcileResult, error) {
	byDate := make(map[string][]Interval, len(existing))
	for _, slot := range existing {
		interval, err := IntervalOf(slot.StartTime, slot.EndTime)
		if err != nil {
			return nil, err
		}
		byDate[slot.Date] = append(byDate[slot.Date], interval)
	}

	result := &ReconcileResult{}
	for {
		candidate, ok := seq.Next()
		if !ok {
			break
		}
		classification, err := classify(candidate, byDate, policy)
		if err != nil {
			return nil, err
		}
		result.Slots = append(result.Slots, ClassifiedSlot{Slot: candidate, Classification: classification})
		switch classification {
		case Bookable:
			result.Created++
			interval, err := IntervalOf(candidate.StartTime, candidate.EndTime)
			if err != nil {
				return nil, err
			}
			byDate[candidate.Date] = append(byDate[candidate.Date], interval)
		case DuplicateDate:
			result.SkippedDuplicate++
		case Overlapping:
			result.SkippedOverlap++
		}
	}
	return result, nil
}

func classify(candidate *clinic_dto.Agenda, byDate map[string][]Interval, policy Policy) (Classification, error) {
	sameDate := byDate[candidate.Date]
	if policy == PolicyDuplicateByDate {
		if len(sameDate) > 0 {
			return DuplicateDate, nil
		}
		return Bookable, nil
	}
	interval, err := IntervalOf(candidate.StartTime, candidate.EndTime)
	if err != nil {
		return "", err
	}
	for _, other := range sameDate {
		if Overlaps(interval, other) {
			return Overlapping, nil
		}
	}
	return Bookable, nil
}
