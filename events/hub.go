package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"tipdesk/models"
	"tipdesk/utils"
)

// Event types pushed to connected admin dashboards.
const (
	EventRoomCreate       = "room_create"
	EventRoomUpdate       = "room_update"
	EventRoomDelete       = "room_delete"
	EventStaffCreate      = "staff_create"
	EventStaffUpdate      = "staff_update"
	EventStaffDelete      = "staff_delete"
	EventAssignmentCreate = "assignment_create"
	EventAssignmentUpdate = "assignment_update"
	EventAssignmentDelete = "assignment_delete"
	EventTipReceived      = "tip_received"
	EventDashboardUpdate  = "dashboard_update"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// hub keeps the live dashboard connections per hotel so one hotel's
// events never leak into another's console.
type hub struct {
	clients map[*websocket.Conn]uint // conn -> hotel id
	mutex   sync.Mutex
}

var dashboardHub = hub{
	clients: make(map[*websocket.Conn]uint),
}

// RegisterClient adds a dashboard connection scoped to a hotel.
func RegisterClient(conn *websocket.Conn, hotelID uint) {
	dashboardHub.mutex.Lock()
	defer dashboardHub.mutex.Unlock()
	dashboardHub.clients[conn] = hotelID
}

// UnregisterClient drops and closes a connection.
func UnregisterClient(conn *websocket.Conn) {
	dashboardHub.mutex.Lock()
	defer dashboardHub.mutex.Unlock()
	delete(dashboardHub.clients, conn)
	conn.Close()
}

// BroadcastTipReceived notifies a hotel's dashboards of a new tip.
func BroadcastTipReceived(tip models.Tip) {
	broadcast(tip.HotelID, Message{Event: EventTipReceived, Data: tip})
}

// BroadcastAssignment pushes an assignment change event.
func BroadcastAssignment(event string, assignment models.Assignment) {
	broadcast(assignment.HotelID, Message{Event: event, Data: assignment})
}

// BroadcastRoom pushes a room change event.
func BroadcastRoom(event string, room models.Room) {
	broadcast(room.HotelID, Message{Event: event, Data: room})
}

// BroadcastMessage sends an arbitrary event to one hotel's dashboards.
func BroadcastMessage(hotelID uint, msg Message) {
	broadcast(hotelID, msg)
}

func broadcast(hotelID uint, msg Message) {
	dashboardHub.mutex.Lock()
	defer dashboardHub.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("Error marshaling event: %v", err)
		return
	}

	for conn, id := range dashboardHub.clients {
		if id != hotelID {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("Error sending event to dashboard: %v", err)
		}
	}
}
