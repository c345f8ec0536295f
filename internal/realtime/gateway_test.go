package realtime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeClientMessage(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantEvent string
		wantErr   bool
	}{
		{
			name:      "register master frame",
			raw:       `{"event":"registerMaster","data":{"categoryIds":[2,3],"cityId":5}}`,
			wantEvent: EventRegisterMaster,
		},
		{
			name:      "register customer frame",
			raw:       `{"event":"registerCustomer","data":{"customerId":42}}`,
			wantEvent: EventRegisterCustomer,
		},
		{
			name:      "disconnect without payload",
			raw:       `{"event":"disconnect"}`,
			wantEvent: EventDisconnect,
		},
		{
			name:    "not json",
			raw:     `registerMaster 2,3 5`,
			wantErr: true,
		},
		{
			name:    "missing event name",
			raw:     `{"data":{"customerId":42}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := decodeClientMessage([]byte(tt.raw))

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, msg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantEvent, msg.Event)
		})
	}
}

func TestRegisterPayloadShapes(t *testing.T) {
	msg, err := decodeClientMessage([]byte(`{"event":"registerMaster","data":{"categoryIds":[2,3],"cityId":5}}`))
	require.NoError(t, err)

	var master RegisterMasterPayload
	require.NoError(t, json.Unmarshal(msg.Data, &master))
	assert.Equal(t, []int64{2, 3}, master.CategoryIDs)
	assert.Equal(t, int64(5), master.CityID)

	msg, err = decodeClientMessage([]byte(`{"event":"registerCustomer","data":{"customerId":42}}`))
	require.NoError(t, err)

	var customer RegisterCustomerPayload
	require.NoError(t, json.Unmarshal(msg.Data, &customer))
	assert.Equal(t, int64(42), customer.CustomerID)
}
