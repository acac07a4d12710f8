package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "afternote/pkg/domain"
	dErrors "afternote/pkg/domain-errors"
)

var now = time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestNewDeliveryCondition_DateIffSpecificDate(t *testing.T) {
	owner := id.OwnerID(uuid.New())
	date := &id.Date{Year: 2025, Month: time.June, Day: 1}

	triggers := []TriggerCondition{TriggerAppInactivity, TriggerSpecificDate, TriggerReceiverRequest}
	methods := []DeliveryMethod{DeliveryMethodAutomatic, DeliveryMethodReceiverApproval}

	for _, trig := range triggers {
		for _, method := range methods {
			for _, d := range []*id.Date{nil, date} {
				c, err := NewDeliveryCondition(owner, method, trig, d, nil, nil, now)
				if trig == TriggerSpecificDate && d == nil {
					require.Error(t, err)
					assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
					continue
				}
				require.NoError(t, err)
				assert.Equal(t, trig == TriggerSpecificDate, c.TriggerDate != nil,
					"trigger=%s method=%s date=%v", trig, method, d)
			}
		}
	}
}

func TestNewDeliveryCondition_InactivityDays(t *testing.T) {
	owner := id.OwnerID(uuid.New())

	t.Run("kept for APP_INACTIVITY", func(t *testing.T) {
		c, err := NewDeliveryCondition(owner, DeliveryMethodAutomatic, TriggerAppInactivity, nil, nil, ptr(30), now)
		require.NoError(t, err)
		require.NotNil(t, c.InactivityDays)
		assert.Equal(t, 30, *c.InactivityDays)
	})

	t.Run("dropped for other triggers", func(t *testing.T) {
		c, err := NewDeliveryCondition(owner, DeliveryMethodAutomatic, TriggerReceiverRequest, nil, nil, ptr(30), now)
		require.NoError(t, err)
		assert.Nil(t, c.InactivityDays)
	})

	t.Run("out of range rejected", func(t *testing.T) {
		for _, n := range []int{0, -1, 366} {
			_, err := NewDeliveryCondition(owner, DeliveryMethodAutomatic, TriggerAppInactivity, nil, nil, ptr(n), now)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation), "days=%d", n)
		}
	})
}

func TestNewDeliveryCondition_RejectsUnknownEnums(t *testing.T) {
	owner := id.OwnerID(uuid.New())
	_, err := NewDeliveryCondition(owner, "TELEPATHY", TriggerAppInactivity, nil, nil, nil, now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewDeliveryCondition(owner, DeliveryMethodAutomatic, "FULL_MOON", nil, nil, nil, now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))

	_, err = NewDeliveryCondition(id.OwnerID{}, DeliveryMethodAutomatic, TriggerAppInactivity, nil, nil, nil, now)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestApplyLeaveMessage(t *testing.T) {
	c, err := NewDeliveryCondition(id.OwnerID(uuid.New()), DeliveryMethodAutomatic, TriggerReceiverRequest, nil, ptr("hi"), nil, now)
	require.NoError(t, err)
	require.Equal(t, "hi", *c.LeaveMessage)

	later := now.Add(time.Hour)
	require.NoError(t, c.CanApplyLeaveMessage(ptr("")))
	c.ApplyLeaveMessage(ptr(""), later)
	assert.Nil(t, c.LeaveMessage)
	assert.Equal(t, later, c.UpdatedAt)

	long := make([]rune, MaxLeaveMessage+1)
	for i := range long {
		long[i] = '가'
	}
	assert.Error(t, c.CanApplyLeaveMessage(ptr(string(long))))
	assert.NoError(t, c.CanApplyLeaveMessage(ptr(string(long[:MaxLeaveMessage]))))
}

func TestClone_IsDeep(t *testing.T) {
	date := &id.Date{Year: 2025, Month: time.June, Day: 1}
	c, err := NewDeliveryCondition(id.OwnerID(uuid.New()), DeliveryMethodAutomatic, TriggerSpecificDate, date, ptr("bye"), nil, now)
	require.NoError(t, err)

	cp := c.Clone()
	cp.TriggerDate.Day = 9
	*cp.LeaveMessage = "changed"

	assert.Equal(t, 1, c.TriggerDate.Day)
	assert.Equal(t, "bye", *c.LeaveMessage)
}
