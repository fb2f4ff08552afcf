package handlers

import (
	"fmt"

	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/rankworks/checkout.api/config"
)

// ProducerTopic is the topic to which the order captured kafka message is sent
const ProducerTopic = "order-captured"

// ProducerSchemaName is the schema which will be used to send the order
// captured kafka message with
const ProducerSchemaName = "order-captured"

// orderCaptured represents the avro schema for the order captured message
type orderCaptured struct {
	PayPalOrderID string `avro:"paypal_order_id"`
	CaptureID     string `avro:"capture_id,omitempty"`
}

// handleOrderCapturedMessage allows us to mock the call to
// produceOrderCapturedMessage for unit tests
var handleOrderCapturedMessage = produceOrderCapturedMessage

// produceOrderCapturedMessage handles creating a producer, marshalling the
// order ids into the correct avro schema and sending the message to the topic
// defined in ProducerTopic
func produceOrderCapturedMessage(paypalOrderID string, captureID string) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	orderCapturedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: orderCapturedSchema,
	}

	// Prepare a message with the avro schema
	message, err := prepareKafkaMessage(paypalOrderID, captureID, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	// Send the message
	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceOrderCapturedMessage() to allow
// unit testing of non-kafka portion of code
func prepareKafkaMessage(paypalOrderID string, captureID string, orderCapturedSchema avro.Schema) (*producer.Message, error) {
	orderCapturedMessage := orderCaptured{PayPalOrderID: paypalOrderID, CaptureID: captureID}

	messageBytes, err := orderCapturedSchema.Marshal(orderCapturedMessage)
	if err != nil {
		err = fmt.Errorf("error marshalling order captured message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
