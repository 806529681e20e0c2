package agenda

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/constvars"
	"citamed-service/internal/pkg/exceptions"
)

var weekdayNames = map[string]time.Weekday{
	"domingo":   time.Sunday,
	"lunes":     time.Monday,
	"martes":    time.Tuesday,
	"miercoles": time.Wednesday,
	"miércoles": time.Wednesday,
	"jueves":    time.Thursday,
	"viernes":   time.Friday,
	"sabado":    time.Saturday,
	"sábado":    time.Saturday,
}

func ParseWeekday(name string) (time.Weekday, error) {
	weekday, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, exceptions.ErrInputValidation(fmt.Errorf("unknown weekday %q", name))
	}
	return weekday, nil
}

// Recurrence expands a date range, a weekday set and a single time block into
// one candidate agenda per matching date. It never consults existing agendas;
// that is the Reconciler's job.
type Recurrence struct {
	DoctorID   string
	RangeStart time.Time
	RangeEnd   time.Time
	Weekdays   map[time.Weekday]bool
	Block      Interval
	Available  bool
}

// NewRecurrence validates the recurrence against the civil date of now.
// The range must start strictly after today.
func NewRecurrence(doctorID, rangeStart, rangeEnd string, weekdays []string, blockStart, blockEnd string, available bool, now time.Time) (*Recurrence, error) {
	start, err := time.Parse(constvars.DateLayout, rangeStart)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	end, err := time.Parse(constvars.DateLayout, rangeEnd)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if !start.After(civilDate(now)) {
		return nil, exceptions.ErrInputValidation(errors.New("the start date must be after today"))
	}
	if len(weekdays) == 0 {
		return nil, exceptions.ErrInputValidation(errors.New("at least one weekday is required"))
	}
	set := make(map[time.Weekday]bool, len(weekdays))
	for _, name := range weekdays {
		weekday, err := ParseWeekday(name)
		if err != nil {
			return nil, err
		}
		set[weekday] = true
	}
	block, err := IntervalOf(blockStart, blockEnd)
	if err != nil {
		return nil, err
	}
	if block.Start >= block.End {
		return nil, exceptions.ErrInputValidation(errors.New("the start time must be before the end time"))
	}
	return &Recurrence{
		DoctorID:   doctorID,
		RangeStart: start,
		RangeEnd:   end,
		Weekdays:   set,
		Block:      block,
		Available:  available,
	}, nil
}

// NewSingleDate is the one-date variant: a range of exactly one day whose own
// weekday is the only member of the set. Same future-date rule applies.
func NewSingleDate(doctorID, date, startTime, endTime string, available bool, now time.Time) (*Recurrence, error) {
	day, err := time.Parse(constvars.DateLayout, date)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}
	if !day.After(civilDate(now)) {
		return nil, exceptions.ErrInputValidation(errors.New("the date must be after today"))
	}
	block, err := IntervalOf(startTime, endTime)
	if err != nil {
		return nil, err
	}
	if block.Start >= block.End {
		return nil, exceptions.ErrInputValidation(errors.New("the start time must be before the end time"))
	}
	return &Recurrence{
		DoctorID:   doctorID,
		RangeStart: day,
		RangeEnd:   day,
		Weekdays:   map[time.Weekday]bool{day.Weekday(): true},
		Block:      block,
		Available:  available,
	}, nil
}

// Slots returns a lazy, finite, restartable sequence over the recurrence.
func (r *Recurrence) Slots() *SlotSeq {
	return &SlotSeq{recurrence: r, cursor: r.RangeStart}
}

type SlotSeq struct {
	recurrence *Recurrence
	cursor     time.Time
}

// Next yields the next candidate agenda, or false once the range is
// exhausted. An empty range (end before start) yields nothing.
func (s *SlotSeq) Next() (*clinic_dto.Agenda, bool) {
	for !s.cursor.After(s.recurrence.RangeEnd) {
		day := s.cursor
		s.cursor = s.cursor.AddDate(0, 0, 1)
		if !s.recurrence.Weekdays[day.Weekday()] {
			continue
		}
		return &clinic_dto.Agenda{
			DoctorID:  s.recurrence.DoctorID,
			Date:      day.Format(constvars.DateLayout),
			StartTime: FormatMinutes(s.recurrence.Block.Start),
			EndTime:   FormatMinutes(s.recurrence.Block.End),
			Available: s.recurrence.Available,
		}, true
	}
	return nil, false
}

func (s *SlotSeq) Reset() {
	s.cursor = s.recurrence.RangeStart
}

func civilDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
