package ws

// Hub fans events out to connected subscribers, keyed by user id. REST
// handlers stay the mutation path; the hub only notifies.
type Hub interface {
	Run()
	RegisterClient(client *Client)
	UnregisterClient(client *Client)
	SendToUser(userId string, payload []byte)
	Broadcast(payload []byte)
	ClientCount() int
}
