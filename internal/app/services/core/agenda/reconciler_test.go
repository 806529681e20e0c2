package agenda

import (
	"testing"
	"time"

	"citamed-service/internal/pkg/clinic_dto"

	"github.com/stretchr/testify/assert"
)

var reconcilerNow = time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

func existingSlot(date, start, end string) clinic_dto.Agenda {
	return clinic_dto.Agenda{ID: "existing", DoctorID: "doc-1", Date: date, StartTime: start, EndTime: end, Available: true}
}

func TestReconcileOverlapPolicy(t *testing.T) {
	existing := []clinic_dto.Agenda{existingSlot("2025-02-01", "09:00", "10:00")}

	t.Run("Overlapping candidate is skipped", func(t *testing.T) {
		recurrence, err := NewSingleDate("doc-1", "2025-02-01", "09:30", "10:30", true, reconcilerNow)
		assert.NoError(t, err)

		result, err := Reconcile(recurrence.Slots(), existing, PolicyOverlapByInterval)
		assert.NoError(t, err)
		assert.Len(t, result.Slots, 1)
		assert.Equal(t, Overlapping, result.Slots[0].Classification)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 1, result.SkippedOverlap)
	})

	t.Run("Touching boundary is bookable", func(t *testing.T) {
		recurrence, err := NewSingleDate("doc-1", "2025-02-01", "10:00", "11:00", true, reconcilerNow)
		assert.NoError(t, err)

		result, err := Reconcile(recurrence.Slots(), existing, PolicyOverlapByInterval)
		assert.NoError(t, err)
		assert.Equal(t, Bookable, result.Slots[0].Classification)
		assert.Equal(t, 1, result.Created)
		assert.Equal(t, 0, result.SkippedOverlap)
	})

	t.Run("Accepted candidates block the rest of the batch", func(t *testing.T) {
		// daily recurrence over two days with the same block: second day has
		// no existing slot, both days bookable; run twice to show the batch
		// itself becomes the obstacle
		recurrence, err := NewRecurrence("doc-1", "2025-02-03", "2025-02-04", []string{"lunes", "martes"}, "09:00", "10:00", true, reconcilerNow)
		assert.NoError(t, err)

		result, err := Reconcile(recurrence.Slots(), nil, PolicyOverlapByInterval)
		assert.NoError(t, err)
		assert.Equal(t, 2, result.Created)

		seq := recurrence.Slots()
		result, err = Reconcile(seq, []clinic_dto.Agenda{*result.Slots[0].Slot, *result.Slots[1].Slot}, PolicyOverlapByInterval)
		assert.NoError(t, err)
		assert.Equal(t, 0, result.Created)
		assert.Equal(t, 2, result.SkippedOverlap)
	})
}

func TestReconcileDuplicatePolicy(t *testing.T) {
	existing := []clinic_dto.Agenda{existingSlot("2025-02-01", "09:00", "10:00")}

	t.Run("Same date is duplicate regardless of time", func(t *testing.T) {
		recurrence, err := NewSingleDate("doc-1", "2025-02-01", "15:00", "16:00", true, reconcilerNow)
		assert.NoError(t, err)

		result, err := Reconcile(recurrence.Slots(), existing, PolicyDuplicateByDate)
		assert.NoError(t, err)
		assert.Equal(t, DuplicateDate, result.Slots[0].Classification)
		assert.Equal(t, 1, result.SkippedDuplicate)
	})

	t.Run("Other date is bookable", func(t *testing.T) {
		recurrence, err := NewSingleDate("doc-1", "2025-02-02", "09:00", "10:00", true, reconcilerNow)
		assert.NoError(t, err)

		result, err := Reconcile(recurrence.Slots(), existing, PolicyDuplicateByDate)
		assert.NoError(t, err)
		assert.Equal(t, Bookable, result.Slots[0].Classification)
		assert.Equal(t, 1, result.Created)
	})
}

func TestReconcileMalformedExisting(t *testing.T) {
	existing := []clinic_dto.Agenda{existingSlot("2025-02-01", "nonsense", "10:00")}
	recurrence, err := NewSingleDate("doc-1", "2025-02-01", "09:00", "10:00", true, reconcilerNow)
	assert.NoError(t, err)

	_, err = Reconcile(recurrence.Slots(), existing, PolicyOverlapByInterval)
	assert.Error(t, err)
}
