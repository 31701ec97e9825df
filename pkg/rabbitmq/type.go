package rabbitmq

import (
	"context"
	"errors"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	// RetryConnectionDelay is the delay between reconnect attempts.
	RetryConnectionDelay = 2 * time.Second
	// RetryConnectionTimeout is the maximum time to wait for the initial connection.
	RetryConnectionTimeout = 30 * time.Second
)

var ErrConnectionTimeout = errors.New("rabbitmq: connection timed out")

// connectionImpl implements IRabbitMQ.
type connectionImpl struct {
	url  string
	conn *amqp.Connection
}

// channelImpl implements IChannel.
type channelImpl struct {
	ch *amqp.Channel
}

// ExchangeArgs are the arguments for ExchangeDeclare.
type ExchangeArgs struct {
	Name       string
	Kind       string
	Durable    bool
	AutoDelete bool
	Internal   bool
	NoWait     bool
	Args       amqp.Table
}

func (e ExchangeArgs) spread() (string, string, bool, bool, bool, bool, amqp.Table) {
	return e.Name, e.Kind, e.Durable, e.AutoDelete, e.Internal, e.NoWait, e.Args
}

// QueueArgs are the arguments for QueueDeclare.
type QueueArgs struct {
	Name       string
	Durable    bool
	AutoDelete bool
	Exclusive  bool
	NoWait     bool
	Args       amqp.Table
}

func (q QueueArgs) spread() (string, bool, bool, bool, bool, amqp.Table) {
	return q.Name, q.Durable, q.AutoDelete, q.Exclusive, q.NoWait, q.Args
}

// QueueBindArgs are the arguments for QueueBind.
type QueueBindArgs struct {
	Queue    string
	Key      string
	Exchange string
	NoWait   bool
	Args     amqp.Table
}

func (q QueueBindArgs) spread() (string, string, string, bool, amqp.Table) {
	return q.Queue, q.Key, q.Exchange, q.NoWait, q.Args
}

// ConsumeArgs are the arguments for Consume.
type ConsumeArgs struct {
	Queue     string
	Consumer  string
	AutoAck   bool
	Exclusive bool
	NoLocal   bool
	NoWait    bool
	Args      amqp.Table
}

func (c ConsumeArgs) spread() (string, string, bool, bool, bool, bool, amqp.Table) {
	return c.Queue, c.Consumer, c.AutoAck, c.Exclusive, c.NoLocal, c.NoWait, c.Args
}

// PublishArgs are the arguments for Publish.
type PublishArgs struct {
	Exchange   string
	RoutingKey string
	Mandatory  bool
	Immediate  bool
	Msg        amqp.Publishing
}

func (p PublishArgs) spread(ctx context.Context) (context.Context, string, string, bool, bool, amqp.Publishing) {
	return ctx, p.Exchange, p.RoutingKey, p.Mandatory, p.Immediate, p.Msg
}
