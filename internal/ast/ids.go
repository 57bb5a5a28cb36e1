package ast

// NodeID addresses a Node in the Builder's single node arena. The zero value
// NoNodeID never names a real node.
type NodeID uint32

// PayloadID addresses a kind-specific payload in one of the Builder's
// payload arenas. A PayloadID is only meaningful together with the
// Node.Tag (and, for Definition/Usage nodes, the ElementKind) that produced
// it — it is not unique across payload arenas on its own.
type PayloadID uint32

const (
	NoNodeID    NodeID    = 0
	NoPayloadID PayloadID = 0
)

func (id NodeID) IsValid() bool    { return id != NoNodeID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
