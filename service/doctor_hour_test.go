package service

import (
	"testing"

	"github.com/ariebrainware/hospital-directory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateDoctorHour_Containment(t *testing.T) {
	db := setupTestDB(t)
	h, d := seedHospital(t, db, 1)
	doc := seedDoctor(t, db, h, d)
	_, err := CreateOpdHour(ctx, db, superAdmin, h.ID, OpdHourInput{Day: "monday", OpeningTime: "08:00:00", ClosingTime: "17:00:00"})
	require.NoError(t, err)

	_, err = CreateDoctorHour(ctx, db, staffOf(1), doc.ID, DoctorHourInput{Day: "Monday", AvailableFrom: "07:00:00", AvailableTo: "10:00:00"})
	requireKind(t, err, KindInvalidRange)
	assert.Equal(t, "availability must lie between 08:00:00 and 17:00:00 on Monday", err.Error())

	tests := []struct {
		name string
		from string
		to   string
		kind Kind
	}{
		{"ends after closing", "16:00:00", "18:00:00", KindInvalidRange},
		{"reversed", "12:00:00", "10:00:00", KindInvalidRange},
		{"empty", "10:00:00", "10:00:00", KindInvalidRange},
		{"bad clock", "10am", "11:00:00", KindInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateDoctorHour(ctx, db, superAdmin, doc.ID, DoctorHourInput{Day: "Monday", AvailableFrom: tt.from, AvailableTo: tt.to})
			requireKind(t, err, tt.kind)
		})
	}

	// The OPD bounds themselves are inclusive.
	row, err := CreateDoctorHour(ctx, db, superAdmin, doc.ID, DoctorHourInput{Day: "monday", AvailableFrom: "08:00:00", AvailableTo: "17:00:00"})
	require.NoError(t, err)
	assert.Equal(t, model.Monday, row.Day)
	assert.True(t, row.IsAvailable)

	_, err = CreateDoctorHour(ctx, db, superAdmin, doc.ID, DoctorHourInput{Day: "Monday", AvailableFrom: "09:00:00", AvailableTo: "10:00:00"})
	requireKind(t, err, KindConflict)
}

func TestCreateDoctorHour_RequiresOpd(t *testing.T) {
	db := setupTestDB(t)
	h, d := seedHospital(t, db, 1)
	seedHospital(t, db, 2)
	doc := seedDoctor(t, db, h, d)

	_, err := CreateDoctorHour(ctx, db, superAdmin, doc.ID, DoctorHourInput{Day: "Sunday", AvailableFrom: "09:00:00", AvailableTo: "10:00:00"})
	requireKind(t, err, KindInvalidState)

	_, err = CreateDoctorHour(ctx, db, superAdmin, 999, DoctorHourInput{Day: "Sunday", AvailableFrom: "09:00:00", AvailableTo: "10:00:00"})
	requireKind(t, err, KindNotFound)

	_, err = CreateDoctorHour(ctx, db, staffOf(2), doc.ID, DoctorHourInput{Day: "Sunday", AvailableFrom: "09:00:00", AvailableTo: "10:00:00"})
	requireKind(t, err, KindForbidden)
}

func TestUpdateDoctorHour(t *testing.T) {
	db := setupTestDB(t)
	h, d := seedHospital(t, db, 1)
	doc := seedDoctor(t, db, h, d)
	for _, day := range []string{"Monday", "Tuesday"} {
		_, err := CreateOpdHour(ctx, db, superAdmin, h.ID, OpdHourInput{Day: day, OpeningTime: "08:00:00", ClosingTime: "17:00:00"})
		require.NoError(t, err)
	}
	mon, err := CreateDoctorHour(ctx, db, superAdmin, doc.ID, DoctorHourInput{Day: "Monday", AvailableFrom: "09:00:00", AvailableTo: "12:00:00"})
	require.NoError(t, err)
	_, err = CreateDoctorHour(ctx, db, superAdmin, doc.ID, DoctorHourInput{Day: "Tuesday", AvailableFrom: "09:00:00", AvailableTo: "12:00:00"})
	require.NoError(t, err)

	off := false
	updated, err := UpdateDoctorHour(ctx, db, superAdmin, doc.ID, mon.ID, DoctorHourInput{Day: "Monday", AvailableFrom: "13:00:00", AvailableTo: "16:00:00", IsAvailable: &off})
	require.NoError(t, err)
	assert.Equal(t, "13:00:00", updated.AvailableFrom.String())
	assert.False(t, updated.IsAvailable)

	_, err = UpdateDoctorHour(ctx, db, superAdmin, doc.ID, mon.ID, DoctorHourInput{Day: "Tuesday", AvailableFrom: "13:00:00", AvailableTo: "16:00:00"})
	requireKind(t, err, KindConflict)

	_, err = UpdateDoctorHour(ctx, db, superAdmin, doc.ID, mon.ID, DoctorHourInput{Day: "Wednesday", AvailableFrom: "13:00:00", AvailableTo: "16:00:00"})
	requireKind(t, err, KindInvalidState)

	_, err = UpdateDoctorHour(ctx, db, superAdmin, doc.ID, mon.ID, DoctorHourInput{Day: "Monday", AvailableFrom: "13:00:00", AvailableTo: "18:00:00"})
	requireKind(t, err, KindInvalidRange)

	got, err := GetDoctorHour(ctx, db, doc.ID, mon.ID)
	require.NoError(t, err)
	assert.Equal(t, "16:00:00", got.AvailableTo.String())

	rows, err := ListDoctorHours(ctx, db, doc.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	require.NoError(t, DeleteDoctorHour(ctx, db, superAdmin, doc.ID, mon.ID))
	requireKind(t, DeleteDoctorHour(ctx, db, superAdmin, doc.ID, mon.ID), KindNotFound)
	_, err = GetDoctorHour(ctx, db, doc.ID, mon.ID)
	requireKind(t, err, KindNotFound)
}
