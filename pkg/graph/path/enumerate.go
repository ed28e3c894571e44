package path

import (
	"context"

	"github.com/mgetachew/addis-routing/pkg/graph"
	"github.com/mgetachew/addis-routing/pkg/slice"
)

// ShortestPathEnumerator finds every hop-shortest path between two nodes, up
// to a caller-supplied cap.
//
// Phase one is a layered breadth-first expansion that records, for each node,
// the hop distance on first visit plus every predecessor sitting exactly one
// layer closer to the start, forming a multi-parent DAG. The expansion stops
// once the goal is dequeued. Phase two walks the DAG backward from the goal
// with an explicit work stack, so the memory stays bounded on deep graphs and
// the cap terminates the traversal itself, not just the output.
type ShortestPathEnumerator struct {
	g graph.Graph
}

func NewShortestPathEnumerator(g graph.Graph) *ShortestPathEnumerator {
	return &ShortestPathEnumerator{g: g}
}

// AllShortestPaths returns up to maxPaths equal-length shortest paths from
// start to goal in discovery order. maxPaths <= 0 removes the cap. A
// disconnected pair yields an empty slice.
func (e *ShortestPathEnumerator) AllShortestPaths(ctx context.Context, start, goal graph.NodeId, maxPaths int) ([]Path, error) {
	stream, err := e.Stream(ctx, start, goal, maxPaths)
	if err != nil {
		return nil, err
	}

	paths := make([]Path, 0)
	for {
		p, ok := stream.Next()
		if !ok {
			break
		}
		paths = append(paths, p)
	}
	return paths, nil
}

// Stream returns a lazy enumeration of the shortest paths. It yields exactly
// the paths AllShortestPaths returns, in the same order; consuming only a
// prefix skips the work of building the rest. The stream is not resumable
// mid-way by a second consumer; re-invoke Stream to start over.
func (e *ShortestPathEnumerator) Stream(ctx context.Context, start, goal graph.NodeId, maxPaths int) (*PathStream, error) {
	if err := checkSearchPreconditions(e.g, start, goal); err != nil {
		return nil, err
	}

	stream := &PathStream{start: start, maxPaths: maxPaths}

	if start == goal {
		stream.stack = []enumFrame{{node: start, trail: Path{start}}}
		return stream, nil
	}

	parents, reached, err := e.buildParentDAG(ctx, start, goal)
	if err != nil {
		return nil, err
	}
	stream.parents = parents
	if reached {
		stream.stack = []enumFrame{{node: goal, trail: Path{goal}}}
	}
	return stream, nil
}

// buildParentDAG runs the layered expansion (phase one). Distances beyond the
// goal's layer are irrelevant, so the expansion ends when the goal is
// dequeued.
func (e *ShortestPathEnumerator) buildParentDAG(ctx context.Context, start, goal graph.NodeId) ([][]graph.NodeId, bool, error) {
	distance := make([]int, e.g.NodeCount())
	for i := range distance {
		distance[i] = -1
	}
	distance[start] = 0
	parents := make([][]graph.NodeId, e.g.NodeCount())

	queue := []graph.NodeId{start}
	visited := slice.MakeFixedSizeSlice(e.g.NodeCount())
	visited.Add(start)

	for len(queue) > 0 {
		if err := cancelled(ctx); err != nil {
			return nil, false, err
		}

		current := queue[0]
		queue = queue[1:]

		if current == goal {
			return parents, true, nil
		}

		for _, neighbor := range e.g.GetNeighbors(current) {
			if !visited.Contains(neighbor) {
				visited.Add(neighbor)
				distance[neighbor] = distance[current] + 1
				parents[neighbor] = []graph.NodeId{current}
				queue = append(queue, neighbor)
			} else if distance[neighbor] == distance[current]+1 {
				// another predecessor one layer closer to the start
				parents[neighbor] = append(parents[neighbor], current)
			}
		}
	}

	return parents, false, nil
}

type enumFrame struct {
	node  graph.NodeId
	trail Path // partial path from the goal backward, ending at node
}

// PathStream lazily yields shortest paths one at a time. The zero value is an
// exhausted stream.
type PathStream struct {
	start    graph.NodeId
	parents  [][]graph.NodeId
	stack    []enumFrame
	maxPaths int // <= 0 means uncapped
	produced int
}

// Next returns the next shortest path, or false when the enumeration is
// exhausted or the cap is reached.
func (s *PathStream) Next() (Path, bool) {
	if s.maxPaths > 0 && s.produced >= s.maxPaths {
		return nil, false
	}

	for len(s.stack) > 0 {
		frame := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]

		if frame.node == s.start {
			p := frame.trail.Clone()
			slice.ReverseInPlace(p)
			s.produced++
			return p, true
		}

		parents := s.parents[frame.node]
		// push in reverse so the first recorded parent is explored first
		for i := len(parents) - 1; i >= 0; i-- {
			trail := frame.trail.Clone()
			trail = append(trail, parents[i])
			s.stack = append(s.stack, enumFrame{node: parents[i], trail: trail})
		}
	}

	return nil, false
}
