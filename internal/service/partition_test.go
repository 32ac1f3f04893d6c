package service

import (
	"testing"
	"time"

	"temple-outreach-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeContacts(n int) []models.Contact {
	contacts := make([]models.Contact, n)
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.Local)
	for i := range contacts {
		contacts[i] = models.Contact{
			BaseModel: models.BaseModel{
				ID:        uuid.New(),
				CreatedAt: base.Add(time.Duration(i) * time.Minute),
			},
			FullName: "Contact",
			Phone:    "555",
		}
	}
	return contacts
}

func makeVolunteers(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestPartitionContacts(t *testing.T) {
	testCases := []struct {
		name          string
		contacts      int
		volunteers    int
		expectedSizes []int
	}{
		{name: "seven contacts across three volunteers", contacts: 7, volunteers: 3, expectedSizes: []int{3, 2, 2}},
		{name: "even split", contacts: 6, volunteers: 3, expectedSizes: []int{2, 2, 2}},
		{name: "five across two", contacts: 5, volunteers: 2, expectedSizes: []int{3, 2}},
		{name: "single volunteer gets everything", contacts: 4, volunteers: 1, expectedSizes: []int{4}},
		{name: "more volunteers than contacts", contacts: 3, volunteers: 5, expectedSizes: []int{1, 1, 1, 0, 0}},
		{name: "one contact one volunteer", contacts: 1, volunteers: 1, expectedSizes: []int{1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			contacts := makeContacts(tc.contacts)
			volunteers := makeVolunteers(tc.volunteers)

			buckets := partitionContacts(contacts, volunteers)

			require.Len(t, buckets, tc.volunteers)
			for i, size := range tc.expectedSizes {
				assert.Len(t, buckets[i], size, "bucket %d", i)
			}

			// Every contact appears exactly once, in the original order
			var flattened []uuid.UUID
			for _, bucket := range buckets {
				for _, contact := range bucket {
					flattened = append(flattened, contact.ID)
				}
			}
			require.Len(t, flattened, tc.contacts)
			for i, contact := range contacts {
				assert.Equal(t, contact.ID, flattened[i])
			}
		})
	}
}

func TestPartitionContactsBucketSizesDifferByAtMostOne(t *testing.T) {
	for contacts := 1; contacts <= 20; contacts++ {
		for volunteers := 1; volunteers <= 6; volunteers++ {
			buckets := partitionContacts(makeContacts(contacts), makeVolunteers(volunteers))

			total := 0
			min, max := contacts, 0
			for _, bucket := range buckets {
				total += len(bucket)
				if len(bucket) > 0 {
					if len(bucket) < min {
						min = len(bucket)
					}
					if len(bucket) > max {
						max = len(bucket)
					}
				}
			}
			assert.Equal(t, contacts, total, "contacts=%d volunteers=%d", contacts, volunteers)
			if max > 0 {
				assert.LessOrEqual(t, max-min, 1, "contacts=%d volunteers=%d", contacts, volunteers)
			}
		}
	}
}

func TestParseCalendarDate(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		expectError bool
		expected    time.Time
	}{
		{
			name:     "bare calendar date",
			input:    "2025-03-15",
			expected: time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
		},
		{
			name:     "timestamp is truncated to the day",
			input:    time.Date(2025, 3, 15, 18, 45, 12, 0, time.Local).Format(time.RFC3339),
			expected: time.Date(2025, 3, 15, 0, 0, 0, 0, time.Local),
		},
		{name: "garbage", input: "not-a-date", expectError: true},
		{name: "empty", input: "", expectError: true},
		{name: "wrong separators", input: "15/03/2025", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := parseCalendarDate(tc.input)
			if tc.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(parsed), "expected %v, got %v", tc.expected, parsed)
		})
	}
}

func TestMissingSessionDates(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2025, 3, d, 0, 0, 0, 0, time.Local)
	}

	t.Run("all dates missing when no sessions exist", func(t *testing.T) {
		missing := missingSessionDates([]time.Time{day(1), day(2)}, nil)
		require.Len(t, missing, 2)
		assert.True(t, day(1).Equal(missing[0]))
		assert.True(t, day(2).Equal(missing[1]))
	})

	t.Run("existing sessions are skipped", func(t *testing.T) {
		sessions := []models.Session{{SessionDate: day(1)}}
		missing := missingSessionDates([]time.Time{day(1), day(2)}, sessions)
		require.Len(t, missing, 1)
		assert.True(t, day(2).Equal(missing[0]))
	})

	t.Run("duplicate follow-up dates are deduplicated", func(t *testing.T) {
		missing := missingSessionDates([]time.Time{day(3), day(3), day(3)}, nil)
		assert.Len(t, missing, 1)
	})

	t.Run("session timestamps are compared at day granularity", func(t *testing.T) {
		sessions := []models.Session{{SessionDate: day(1).Add(10 * time.Hour)}}
		missing := missingSessionDates([]time.Time{day(1)}, sessions)
		assert.Empty(t, missing)
	})

	t.Run("nothing to do", func(t *testing.T) {
		assert.Empty(t, missingSessionDates(nil, nil))
	})
}

func TestUniqueIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	assert.Equal(t, []uuid.UUID{a, b}, uniqueIDs([]uuid.UUID{a, b, a, b, a}))
	assert.Empty(t, uniqueIDs(nil))
}
