package handlers

import (
	"testing"

	"github.com/companieshouse/chs.go/avro"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitPrepareKafkaMessage(t *testing.T) {

	Convey("Successful message preparation with prepareKafkaMessage", t, func() {
		// This is the schema that is used by the producer
		schema := `{
			"type": "record",
			"name": "order_captured",
			"namespace": "checkout",
			"fields": [
			{
				"name": "paypal_order_id",
				"type": "string"
			},
			{
				"name": "capture_id",
				"type": "string"
			}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		message, pkmError := prepareKafkaMessage("ORDER-1", "CAPTURE-1", *producerSchema)
		unmarshalledOrderCaptured := orderCaptured{}
		psError := producerSchema.Unmarshal(message.Value, &unmarshalledOrderCaptured)

		So(pkmError, ShouldEqual, nil)
		So(psError, ShouldEqual, nil)
		So(unmarshalledOrderCaptured.PayPalOrderID, ShouldEqual, "ORDER-1")
		So(unmarshalledOrderCaptured.CaptureID, ShouldEqual, "CAPTURE-1")
		So(message.Topic, ShouldEqual, ProducerTopic)
	})

	Convey("Unsuccessful message preparation with prepareKafkaMessage", t, func() {
		// The field type is wrong, so marshalling should error
		schema := `{
			"type": "record",
			"name": "order_captured",
			"namespace": "checkout",
			"fields": [
			{
				"name": "paypal_order_id",
				"type": "int"
			},
			{
				"name": "capture_id",
				"type": "string"
			}
			]
		}`

		producerSchema := &avro.Schema{
			Definition: schema,
		}

		_, err := prepareKafkaMessage("ORDER-1", "CAPTURE-1", *producerSchema)
		So(err, ShouldNotBeEmpty)
	})
}
