package internal

import (
	"iter"
	"reflect"
)

type NodeFlags int

const (
	FlagNone   NodeFlags = 0
	FlagInHeap NodeFlags = 1 << iota
	FlagDisposed
)

// DependencyLink connects a subscriber to one of its dependencies.
// Each link lives in two lists at once: the subscriber's deps and the dependency's subs.
type DependencyLink struct {
	dep *Signal
	sub *Computed

	prevDep *DependencyLink
	nextDep *DependencyLink

	prevSub *DependencyLink
	nextSub *DependencyLink
}

func (s *Signal) addSubLink(link *DependencyLink) {
	if s.subsHead == nil {
		s.subsHead = link
		link.prevSub = link // loop to self
		link.nextSub = nil
		return
	}

	tail := s.subsHead.prevSub
	tail.nextSub = link
	link.prevSub = tail
	link.nextSub = nil
	s.subsHead.prevSub = link
}

func (s *Signal) removeSubLink(link *DependencyLink) {
	head := s.subsHead
	if head == nil {
		return
	}

	if link == head {
		s.subsHead = link.nextSub
		if s.subsHead != nil {
			s.subsHead.prevSub = link.prevSub
		}
	} else {
		link.prevSub.nextSub = link.nextSub
		if link.nextSub != nil {
			link.nextSub.prevSub = link.prevSub
		} else {
			head.prevSub = link.prevSub
		}
	}

	link.prevSub = nil
	link.nextSub = nil
}

// Subs returns an iterator over the computations subscribed to this signal.
func (s *Signal) Subs() iter.Seq[*Computed] {
	return func(yield func(*Computed) bool) {
		for link := s.subsHead; link != nil; link = link.nextSub {
			if !yield(link.sub) {
				return
			}
		}
	}
}

func isEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	typ := reflect.TypeOf(a)
	if typ != reflect.TypeOf(b) || !typ.Comparable() {
		return false
	}

	return a == b
}
