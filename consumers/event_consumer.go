package consumers

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"storefront/config"
	"storefront/middlewares"
	"storefront/models"
)

var knownEvents = map[string]bool{
	models.EventCartItemAdded:        true,
	models.EventOrderCreated:         true,
	models.EventOrderStatusChanged:   true,
	models.EventOrderDeleted:         true,
	models.EventNewsletterSubscribed: true,
}

type EventConsumer struct {
	log *zap.Logger
}

func NewEventConsumer(log *zap.Logger) *EventConsumer {
	return &EventConsumer{log: log}
}

// Start 注册事件队列与死信队列的消费者
func (ec *EventConsumer) Start(ch *amqp.Channel, cfg *config.Config) error {
	// 消费店铺事件队列
	msgs, err := ch.Consume(
		cfg.EventQueue,
		"storefront",
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("register event consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			ec.HandleEvent(msg)
		}
	}()

	// 消费死信队列
	dlqMsgs, err := ch.Consume(
		cfg.DeadLetterQueue,
		"storefront-dlq",
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		ec.log.Error("failed to register dead letter consumer", zap.Error(err))
		return nil
	}

	go func() {
		for msg := range dlqMsgs {
			ec.HandleDeadLetter(msg)
		}
	}()
	return nil
}

// HandleEvent 处理单条事件；格式错误的消息拒绝且不重新入队，由死信队列接收
func (ec *EventConsumer) HandleEvent(msg amqp.Delivery) {
	defer func() {
		if r := recover(); r != nil {
			ec.log.Error("recovered from panic in event processing", zap.Any("panic", r))
			_ = msg.Nack(false, false)
		}
	}()

	var ev models.StorefrontEvent
	if err := json.Unmarshal(msg.Body, &ev); err != nil {
		ec.log.Warn("invalid event payload", zap.ByteString("body", msg.Body), zap.Error(err))
		middlewares.RecordEvent("invalid", false)
		_ = msg.Nack(false, false)
		return
	}
	if !knownEvents[ev.Type] {
		ec.log.Warn("unknown event type", zap.String("type", ev.Type))
		middlewares.RecordEvent("unknown", false)
		_ = msg.Nack(false, false)
		return
	}

	fields := []zap.Field{
		zap.String("type", ev.Type),
		zap.String("profile_id", ev.ProfileID),
	}
	switch ev.Type {
	case models.EventOrderCreated:
		fields = append(fields, zap.Int64("order_id", ev.OrderID), zap.Int64("total", ev.Total))
	case models.EventOrderStatusChanged:
		fields = append(fields, zap.Int64("order_id", ev.OrderID), zap.String("status", string(ev.Status)))
	case models.EventOrderDeleted:
		fields = append(fields, zap.Int64("order_id", ev.OrderID))
	case models.EventCartItemAdded:
		fields = append(fields, zap.Int64("product_id", ev.ProductID))
	}
	ec.log.Info("storefront event consumed", fields...)
	middlewares.RecordEvent(ev.Type, true)

	// 处理成功后确认消息
	_ = msg.Ack(false)
}

func (ec *EventConsumer) HandleDeadLetter(msg amqp.Delivery) {
	reason := ""
	if deaths, ok := msg.Headers["x-death"].([]interface{}); ok && len(deaths) > 0 {
		if d, ok := deaths[0].(amqp.Table); ok {
			reason, _ = d["reason"].(string)
		}
	}
	ec.log.Warn("received dead letter", zap.ByteString("body", msg.Body), zap.String("reason", reason))
	middlewares.RecordOperation("dead_letter", true)
	_ = msg.Ack(false)
}
