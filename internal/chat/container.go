package chat

type ChatContainer struct {
	Handler *Handler
}

func NewChatContainer(qaURL string) *ChatContainer {
	client := NewClient(qaURL)
	handler := NewHandler(client)

	return &ChatContainer{
		Handler: handler,
	}
}
