// Package broker adapts message streams to a pull-based source with explicit
// commit and a dead-letter destination.
package broker

import "errors"

// ErrClosed is returned by Fetch once the source has been closed.
var ErrClosed = errors.New("message source closed")

const dlqSuffix = "-dlq"

type Message struct {
	Topic  string
	Key    []byte
	Value  []byte
	Offset int64

	// исходное сообщение адаптера, нужно для подтверждения
	raw any
}

func deadLetterTopic(topic string) string {
	return topic + dlqSuffix
}
