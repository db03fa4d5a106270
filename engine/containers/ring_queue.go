package containers

import (
	"errors"
	"sync"
)

// A fixed-capacity FIFO queue. Safe for one producer and one consumer
// on different goroutines, which is how the asset watcher hands reload
// notifications to the engine thread.
type RingQueue struct {
	mutex      sync.Mutex
	data       []interface{}
	size       int
	readIndex  int
	writeIndex int
	count      int
}

// Create a new RingQueue
func NewRingQueue(size int) *RingQueue {
	return &RingQueue{
		data: make([]interface{}, size),
		size: size,
	}
}

// Enqueue adds an element to the queue
func (rq *RingQueue) Enqueue(value interface{}) error {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()

	if rq.count == rq.size {
		return errors.New("queue is full")
	}

	rq.data[rq.writeIndex] = value
	rq.writeIndex = (rq.writeIndex + 1) % rq.size
	rq.count++
	return nil
}

// Dequeue removes and returns the front element in the queue
func (rq *RingQueue) Dequeue() (interface{}, error) {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()

	if rq.count == 0 {
		return nil, errors.New("queue is empty")
	}

	value := rq.data[rq.readIndex]
	rq.data[rq.readIndex] = nil
	rq.readIndex = (rq.readIndex + 1) % rq.size
	rq.count--
	return value, nil
}

// Peek returns the front element without removing it
func (rq *RingQueue) Peek() (interface{}, error) {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()

	if rq.count == 0 {
		return nil, errors.New("queue is empty")
	}
	return rq.data[rq.readIndex], nil
}

// Len reports how many elements are queued
func (rq *RingQueue) Len() int {
	rq.mutex.Lock()
	defer rq.mutex.Unlock()
	return rq.count
}

// IsEmpty checks if the queue is empty
func (rq *RingQueue) IsEmpty() bool {
	return rq.Len() == 0
}

// IsFull checks if the queue is full
func (rq *RingQueue) IsFull() bool {
	return rq.Len() == rq.size
}
