package websocket

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/iamasit07/connectfour/internal/domain"
)

const writeWait = 10 * time.Second

// ConnectionManager handles active WebSocket connections thread-safely
type ConnectionManager struct {
	connections map[string]*websocket.Conn

	// writeMu ensures only one goroutine writes to a specific socket at a time.
	// gorilla connections support one concurrent writer.
	writeMu map[string]*sync.Mutex

	mu sync.RWMutex // Protects the maps themselves
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// AddConnection registers a new connection and initializes its write lock
func (cm *ConnectionManager) AddConnection(connID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	cm.connections[connID] = conn
	cm.writeMu[connID] = &sync.Mutex{}
}

// RemoveConnection closes a connection and cleans up its lock
func (cm *ConnectionManager) RemoveConnection(connID string) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if conn, exists := cm.connections[connID]; exists {
		conn.Close()
		delete(cm.connections, connID)
		delete(cm.writeMu, connID)
	}
}

func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}

// SendMessage sends a JSON message on one connection
func (cm *ConnectionManager) SendMessage(connID string, message domain.ServerMessage) error {
	return cm.write(connID, func(conn *websocket.Conn) error {
		return conn.WriteJSON(message)
	})
}

// Ping sends a keep-alive ping on one connection
func (cm *ConnectionManager) Ping(connID string) error {
	return cm.write(connID, func(conn *websocket.Conn) error {
		return conn.WriteMessage(websocket.PingMessage, nil)
	})
}

func (cm *ConnectionManager) write(connID string, fn func(*websocket.Conn) error) error {
	cm.mu.RLock()
	conn, exists := cm.connections[connID]
	mu, muExists := cm.writeMu[connID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil // disconnected, ignore
	}

	mu.Lock()
	defer mu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return fn(conn)
}
