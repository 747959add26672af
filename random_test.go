package ringlist

import (
	"math/rand"
	"testing"
)

const (
	randomSeed     = 0x5eed
	randomOpCount  = 10000
	checkFrequency = 300
	maxRandomValue = 1 << 10
)

var randomActionWeights = map[string]int{
	"pushBack":  300,
	"pushFront": 300,
	"insert":    200,
	"erase":     200,
	"popFront":  60,
	"popBack":   60,
	"clear":     3,
}

type randomState struct {
	list  *List[int]
	model []int
	rnd   *rand.Rand
}

func (s *randomState) at(i int) Iterator[int] {
	it := s.list.Begin()
	for ; i > 0; i-- {
		it = it.Next()
	}

	return it
}

var randomActions = map[string]func(*randomState){
	"pushBack": func(s *randomState) {
		v := s.rnd.Intn(maxRandomValue)
		s.list.PushBack(v)
		s.model = append(s.model, v)
	},
	"pushFront": func(s *randomState) {
		v := s.rnd.Intn(maxRandomValue)
		s.list.PushFront(v)
		s.model = append([]int{v}, s.model...)
	},
	"insert": func(s *randomState) {
		v := s.rnd.Intn(maxRandomValue)
		i := s.rnd.Intn(len(s.model) + 1)
		s.list.Insert(s.at(i), v)
		s.model = append(s.model[:i:i], append([]int{v}, s.model[i:]...)...)
	},
	"erase": func(s *randomState) {
		if len(s.model) == 0 {
			return
		}

		i := s.rnd.Intn(len(s.model))
		s.list.Erase(s.at(i))
		s.model = append(s.model[:i:i], s.model[i+1:]...)
	},
	"popFront": func(s *randomState) {
		if len(s.model) == 0 {
			return
		}

		s.list.PopFront()
		s.model = s.model[1:]
	},
	"popBack": func(s *randomState) {
		if len(s.model) == 0 {
			return
		}

		s.list.PopBack()
		s.model = s.model[:len(s.model)-1]
	},
	"clear": func(s *randomState) {
		s.list.Clear()
		s.model = nil
	},
}

func (s *randomState) check(t *testing.T) {
	t.Helper()
	checkList(t, s.list, s.model...)
}

func TestRandomOps(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	var names []string
	for name, weight := range randomActionWeights {
		for i := 0; i < weight; i++ {
			names = append(names, name)
		}
	}

	s := &randomState{
		list: New[int](),
		rnd:  rand.New(rand.NewSource(randomSeed)),
	}

	for i := 0; i < randomOpCount; i++ {
		randomActions[names[s.rnd.Intn(len(names))]](s)
		if i%checkFrequency == 0 {
			s.check(t)
			if t.Failed() {
				t.Fatal("list diverged from the model at op", i)
			}
		}
	}

	s.check(t)
}
