package graph

type Arc struct {
	To       NodeId
	Distance float64 // meters
}

type Arcs = []Arc

func MakeArc(to NodeId, distance float64) Arc {
	return Arc{To: to, Distance: distance}
}

func (a Arc) Destination() NodeId {
	return a.To
}

func (a Arc) Cost() float64 {
	return a.Distance
}
