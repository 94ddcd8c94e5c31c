package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"confkit/internal/domain"
	"confkit/internal/validation"
)

func validAttendee() domain.AttendeeUpdate {
	return domain.AttendeeUpdate{
		Email:     "jane@example.com",
		FirstName: "Jane",
		LastName:  "Doe",
	}
}

func newTestAttendeeService(attendees *fakeAttendeeRepo, events *fakeEventRepo) domain.AttendeeService {
	return NewAttendeeService(attendees, events, time.Second)
}

func TestAttendeeService_AddAttendee(t *testing.T) {
	events := newFakeEventRepo()
	event := seedEvent(events, "org-1")
	attendees := newFakeAttendeeRepo()
	svc := newTestAttendeeService(attendees, events)

	upd := validAttendee()
	upd.Email = "  Jane@Example.COM "
	upd.FirstName = " Jane "

	attendee, err := svc.AddAttendee(context.Background(), event.ID, "org-1", upd)
	require.NoError(t, err)
	require.Equal(t, "jane@example.com", attendee.Email)
	require.Equal(t, "Jane", attendee.FirstName)
}

func TestAttendeeService_AddAttendee_Duplicate(t *testing.T) {
	events := newFakeEventRepo()
	event := seedEvent(events, "org-1")
	svc := newTestAttendeeService(newFakeAttendeeRepo(), events)

	_, err := svc.AddAttendee(context.Background(), event.ID, "org-1", validAttendee())
	require.NoError(t, err)
	_, err = svc.AddAttendee(context.Background(), event.ID, "org-1", validAttendee())
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAttendeeService_AddAttendee_Invalid(t *testing.T) {
	events := newFakeEventRepo()
	event := seedEvent(events, "org-1")
	attendees := newFakeAttendeeRepo()
	svc := newTestAttendeeService(attendees, events)

	upd := validAttendee()
	upd.Email = "not-an-email"
	upd.FirstName = "J"

	_, err := svc.AddAttendee(context.Background(), event.ID, "org-1", upd)
	var vErr *validation.ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Result.Errors, 2)
	require.Empty(t, attendees.byID)
}

func TestAttendeeService_ListAttendees(t *testing.T) {
	events := newFakeEventRepo()
	event := seedEvent(events, "org-1")
	svc := newTestAttendeeService(newFakeAttendeeRepo(), events)

	for _, a := range []domain.AttendeeUpdate{
		{Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
		{Email: "grace@example.com", FirstName: "Grace", LastName: "Hopper"},
		{Email: "linus@example.com", FirstName: "Linus", LastName: "Torvalds"},
	} {
		_, err := svc.AddAttendee(context.Background(), event.ID, "org-1", a)
		require.NoError(t, err)
	}

	page, total, err := svc.ListAttendees(context.Background(), event.ID, "org-1", domain.PaginationParams{Page: 1, PageSize: 2})
	require.NoError(t, err)
	require.Equal(t, 3, total)
	require.Len(t, page, 2)

	_, _, err = svc.ListAttendees(context.Background(), event.ID, "org-2", domain.PaginationParams{Page: 1, PageSize: 2})
	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAttendeeService_UpdateAndDelete(t *testing.T) {
	events := newFakeEventRepo()
	event := seedEvent(events, "org-1")
	svc := newTestAttendeeService(newFakeAttendeeRepo(), events)

	attendee, err := svc.AddAttendee(context.Background(), event.ID, "org-1", validAttendee())
	require.NoError(t, err)

	upd := validAttendee()
	upd.Company = strPtr("Acme Corp")
	updated, err := svc.UpdateAttendee(context.Background(), attendee.ID, "org-1", upd)
	require.NoError(t, err)
	require.Equal(t, "Acme Corp", *updated.Company)

	require.ErrorIs(t, svc.DeleteAttendee(context.Background(), attendee.ID, "org-2"), domain.ErrForbidden)
	require.NoError(t, svc.DeleteAttendee(context.Background(), attendee.ID, "org-1"))
	require.ErrorIs(t, svc.DeleteAttendee(context.Background(), attendee.ID, "org-1"), domain.ErrNotFound)
}

func TestAttendeeService_ImportCSV(t *testing.T) {
	events := newFakeEventRepo()
	event := seedEvent(events, "org-1")
	attendees := newFakeAttendeeRepo()
	svc := newTestAttendeeService(attendees, events)

	_, err := svc.AddAttendee(context.Background(), event.ID, "org-1", validAttendee())
	require.NoError(t, err)

	csv := "email,first_name,last_name,company\n" +
		"jane@example.com,Jane,Doe,Acme\n" +
		"ada@example.com,Ada,Lovelace,\n" +
		"grace@example.com,Grace,Hopper,Navy\n"

	summary, err := svc.ImportCSV(context.Background(), event.ID, "org-1", csv)
	require.NoError(t, err)
	require.Equal(t, 2, summary.Imported)
	require.Equal(t, 1, summary.Duplicates)
	require.Equal(t, []string{"jane@example.com"}, summary.Skipped)
	require.Len(t, attendees.byID, 3)
}

func TestAttendeeService_ImportCSV_Invalid(t *testing.T) {
	events := newFakeEventRepo()
	event := seedEvent(events, "org-1")
	attendees := newFakeAttendeeRepo()
	svc := newTestAttendeeService(attendees, events)

	csv := "email,first_name,last_name\n" +
		"bad-email,Jane,Doe\n" +
		"ada@example.com,,Lovelace\n"

	_, err := svc.ImportCSV(context.Background(), event.ID, "org-1", csv)
	var vErr *validation.ValidationFailedError
	require.ErrorAs(t, err, &vErr)
	require.Len(t, vErr.Result.Errors, 2)
	require.Empty(t, attendees.byID, "a rejected blob imports nothing")
}
