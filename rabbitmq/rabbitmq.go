package rabbitmq

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"storefront/config"
	"storefront/models"
)

type RabbitMQ struct {
	Conn    *amqp.Connection
	Channel *amqp.Channel
	Cfg     *config.Config

	// amqp channels are not safe for concurrent publishing
	mu sync.Mutex
}

func NewRabbitMQ(cfg *config.Config) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.RabbitMQURL)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &RabbitMQ{
		Conn:    conn,
		Channel: ch,
		Cfg:     cfg,
	}, nil
}

func deadLetterExchange(cfg *config.Config) string {
	return cfg.DeadLetterQueue + "_exchange"
}

func (r *RabbitMQ) SetupQueues() error {
	// 声明死信交换机和队列
	if err := r.Channel.ExchangeDeclare(
		deadLetterExchange(r.Cfg),
		"direct",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	_, err := r.Channel.QueueDeclare(
		r.Cfg.DeadLetterQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		amqp.Table{
			"x-queue-type": "classic",
		},
	)
	if err != nil {
		return err
	}

	if err := r.Channel.QueueBind(
		r.Cfg.DeadLetterQueue,
		r.Cfg.DeadLetterQueue,
		deadLetterExchange(r.Cfg),
		false,
		nil,
	); err != nil {
		return err
	}

	// 声明店铺事件交换机，路由键即事件类型
	if err := r.Channel.ExchangeDeclare(
		r.Cfg.StorefrontExchange,
		"topic",
		true,  // durable
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		return err
	}

	// 声明事件队列（带优先级和死信）
	_, err = r.Channel.QueueDeclare(
		r.Cfg.EventQueue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		amqp.Table{
			"x-max-priority":            r.Cfg.MaxPriority,
			"x-dead-letter-exchange":    deadLetterExchange(r.Cfg),
			"x-dead-letter-routing-key": r.Cfg.DeadLetterQueue,
		},
	)
	if err != nil {
		return err
	}

	return r.Channel.QueueBind(
		r.Cfg.EventQueue,
		"#",
		r.Cfg.StorefrontExchange,
		false,
		nil,
	)
}

// Publish 发布店铺事件，实现 notify.Publisher
func (r *RabbitMQ) Publish(ctx context.Context, ev models.StorefrontEvent) error {
	msg, err := publishing(ev, r.Cfg.NotificationTTL, r.Cfg.MaxPriority)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Channel.PublishWithContext(
		ctx,
		r.Cfg.StorefrontExchange,
		ev.Type,
		false, // mandatory
		false, // immediate
		msg,
	)
}

// publishing 构造消息：订单事件优先级更高，购物车提示只在通知有效期内投递
func publishing(ev models.StorefrontEvent, notificationTTL time.Duration, maxPriority int) (amqp.Publishing, error) {
	if ev.Occurred.IsZero() {
		ev.Occurred = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		return amqp.Publishing{}, err
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		Timestamp:    ev.Occurred,
		ContentType:  "application/json",
		Type:         ev.Type,
		Body:         body,
		Priority:     uint8(min(priority(ev.Type), maxPriority)),
	}
	if ev.Type == models.EventCartItemAdded && notificationTTL > 0 {
		msg.DeliveryMode = amqp.Transient
		msg.Expiration = strconv.FormatInt(notificationTTL.Milliseconds(), 10)
	}
	return msg, nil
}

func priority(eventType string) int {
	switch eventType {
	case models.EventOrderCreated:
		return 9
	case models.EventOrderStatusChanged, models.EventOrderDeleted:
		return 5
	default:
		return 0
	}
}

func (r *RabbitMQ) Close() {
	if r.Channel != nil {
		_ = r.Channel.Close()
	}
	if r.Conn != nil {
		_ = r.Conn.Close()
	}
}
