package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"citamed-service/internal/pkg/clinic_dto"
	"citamed-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

func TestAgendaClientStatusMapping(t *testing.T) {
	t.Run("404 maps to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewAgendaBackendClient(server.URL)
		_, err := client.FindAgendaByID(context.Background(), "missing")
		assert.Error(t, err)
		assert.True(t, exceptions.IsNotFound(err))
	})

	t.Run("409 maps to conflict", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := NewAgendaBackendClient(server.URL)
		_, err := client.CreateAgenda(context.Background(), &clinic_dto.Agenda{DoctorID: "doc-1"})
		assert.Error(t, err)
		assert.True(t, exceptions.IsConflict(err))
	})

	t.Run("400 maps to validation", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer server.Close()

		client := NewAgendaBackendClient(server.URL)
		_, err := client.CreateAgenda(context.Background(), &clinic_dto.Agenda{})
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})
}

func TestReadRetries(t *testing.T) {
	t.Run("Reads are retried on transient backend failure", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&attempts, 1) < 3 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`[{"id":"ag-1","uidMedico":"doc-1","fecha":"2025-03-10","horaInicio":"09:00","horaFin":"09:30","disponible":true}]`))
		}))
		defer server.Close()

		client := NewAgendaBackendClient(server.URL)
		agendas, err := client.FindAgendasByDoctorID(context.Background(), "doc-1")
		assert.NoError(t, err)
		assert.Len(t, agendas, 1)
		assert.Equal(t, "ag-1", agendas[0].ID)
		assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
	})

	t.Run("Reads give up after the retry budget", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewAgendaBackendClient(server.URL)
		_, err := client.FindAgendasByDoctorID(context.Background(), "doc-1")
		assert.Error(t, err)
		assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
	})

	t.Run("Writes are never retried", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client := NewAgendaBackendClient(server.URL)
		_, err := client.CreateAgenda(context.Background(), &clinic_dto.Agenda{DoctorID: "doc-1"})
		assert.Error(t, err)
		assert.EqualValues(t, 1, atomic.LoadInt32(&attempts))
	})
}

func TestAppointmentClientPaths(t *testing.T) {
	t.Run("Status transition patches the estado endpoint", func(t *testing.T) {
		var gotPath, gotMethod string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotMethod = r.Method
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := NewAppointmentBackendClient(server.URL)
		err := client.UpdateAppointmentStatus(context.Background(), "cita-1", clinic_dto.AppointmentStatusConfirmed)
		assert.NoError(t, err)
		assert.Equal(t, "/citas/cita-1/estado", gotPath)
		assert.Equal(t, http.MethodPatch, gotMethod)
	})

	t.Run("Create posts against the slot being claimed", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte(`{"id":"cita-1","agendaId":"ag-1","estado":"pendiente"}`))
		}))
		defer server.Close()

		client := NewAppointmentBackendClient(server.URL)
		created, err := client.CreateAppointment(context.Background(), &clinic_dto.Appointment{AgendaID: "ag-1"})
		assert.NoError(t, err)
		assert.Equal(t, "/citas/solicitar/ag-1", gotPath)
		assert.Equal(t, clinic_dto.AppointmentStatusPending, created.Status)
	})

	t.Run("Unknown estado is rejected before any request goes out", func(t *testing.T) {
		var attempts int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&attempts, 1)
		}))
		defer server.Close()

		client := NewAppointmentBackendClient(server.URL)

		_, err := client.FindAppointmentsByStatus(context.Background(), clinic_dto.AppointmentStatus("cancelada"))
		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)

		err = client.UpdateAppointmentStatus(context.Background(), "cita-1", clinic_dto.AppointmentStatus("cancelada"))
		assert.Error(t, err)

		assert.EqualValues(t, 0, atomic.LoadInt32(&attempts))
	})
}
