package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tipdesk/models"
	"tipdesk/store"
)

var testDBSeq int

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	testDBSeq++
	dsn := fmt.Sprintf("file:services_test_%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, store.AutoMigrate(db))
	return store.New(db)
}

var testOrgSeq int

func newTestHotel(t *testing.T, s *store.Store) models.Hotel {
	t.Helper()
	testOrgSeq++
	hotel := models.Hotel{
		OrgID:     fmt.Sprintf("HTL-TEST%d", testOrgSeq),
		HotelName: "Grand Lane",
		Email:     "admin@grandlane.test",
	}
	require.NoError(t, s.Hotels.Add(&hotel))
	return hotel
}
