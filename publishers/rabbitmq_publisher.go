package publishers

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/streadway/amqp"
)

// EventMessage representa un evento de dominio publicado hacia los
// consumidores (índice de búsqueda, sincronización de estado de inmuebles)
type EventMessage struct {
	Action   string `json:"action"` // "create", "update", "delete", "status_changed"
	Entity   string `json:"entity"` // "inmueble", "cliente", "contrato"
	EntityID uint   `json:"entity_id"`
}

// EventPublisher publica eventos de dominio DESPUÉS del commit.
// Es best-effort: un fallo de publicación se loguea y no revierte nada;
// el consumidor re-sincroniza leyendo la API.
type EventPublisher interface {
	Publish(action, entity string, entityID uint)
	Close() error
}

// rabbitMQPublisher publica los eventos en una queue durable de RabbitMQ
type rabbitMQPublisher struct {
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
}

// NewRabbitMQPublisher conecta con RabbitMQ y declara la queue
func NewRabbitMQPublisher(rabbitURL, queueName string) (EventPublisher, error) {
	log.Printf("Connecting to RabbitMQ at %s", rabbitURL)

	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if queueName == "" {
		queueName = "inmuebles_queue"
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	log.Printf("Queue '%s' declared successfully", queueName)

	return &rabbitMQPublisher{
		connection: conn,
		channel:    ch,
		queueName:  queueName,
	}, nil
}

// Publish publica un evento en la queue
func (p *rabbitMQPublisher) Publish(action, entity string, entityID uint) {
	body, err := json.Marshal(EventMessage{
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
	})
	if err != nil {
		log.Printf("Error marshaling event (%s %s %d): %v", action, entity, entityID, err)
		return
	}

	err = p.channel.Publish(
		"",          // exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		log.Printf("Error publishing event (%s %s %d): %v", action, entity, entityID, err)
		return
	}

	log.Printf("Published event: action=%s, entity=%s, id=%d", action, entity, entityID)
}

// Close cierra las conexiones de RabbitMQ
func (p *rabbitMQPublisher) Close() error {
	var errs []error

	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing channel: %w", err))
		}
	}

	if p.connection != nil {
		if err := p.connection.Close(); err != nil {
			errs = append(errs, fmt.Errorf("error closing connection: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing RabbitMQ publisher: %v", errs)
	}
	return nil
}

// noopPublisher es la implementación nula para cuando la mensajería está
// deshabilitada (tests, entornos sin RabbitMQ)
type noopPublisher struct{}

// NewNoopPublisher crea un publisher que descarta todos los eventos
func NewNoopPublisher() EventPublisher {
	return &noopPublisher{}
}

func (noopPublisher) Publish(string, string, uint) {}
func (noopPublisher) Close() error                 { return nil }
