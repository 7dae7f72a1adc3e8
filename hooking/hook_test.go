package hooking

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type recordingHook struct {
	tag   string
	trace *[]string
}

func (h *recordingHook) Func(ctx HookCtx) {
	*h.trace = append(*h.trace, h.tag+":"+ctx.Pos.Name)
}

var _ = Describe("HookableBase", func() {
	var (
		base  *HookableBase
		trace []string
		pos   *HookPos
	)

	BeforeEach(func() {
		base = &HookableBase{}
		trace = nil
		pos = &HookPos{Name: "Check"}
	})

	It("should invoke hooks in registration order", func() {
		base.AcceptHook(&recordingHook{tag: "a", trace: &trace})
		base.AcceptHook(&recordingHook{tag: "b", trace: &trace})

		base.InvokeHook(HookCtx{Pos: pos})

		Expect(base.NumHooks()).To(Equal(2))
		Expect(trace).To(Equal([]string{"a:Check", "b:Check"}))
	})

	It("should pass the item and detail through", func() {
		var got HookCtx
		base.AcceptHook(HookFunc(func(ctx HookCtx) { got = ctx }))

		base.InvokeHook(HookCtx{Pos: pos, Item: 1, Detail: "x"})

		Expect(got.Item).To(Equal(1))
		Expect(got.Detail).To(Equal("x"))
		Expect(got.Pos).To(BeIdenticalTo(pos))
	})

	It("should panic on duplicated hook", func() {
		hook := &recordingHook{tag: "a", trace: &trace}
		base.AcceptHook(hook)

		Expect(func() { base.AcceptHook(hook) }).To(Panic())
	})

	It("should panic on nil hook", func() {
		Expect(func() { base.AcceptHook(nil) }).To(Panic())
	})

	It("should accept the same hook func twice", func() {
		count := 0
		f := HookFunc(func(HookCtx) { count++ })

		base.AcceptHook(f)
		base.AcceptHook(f)
		base.InvokeHook(HookCtx{Pos: pos})

		Expect(count).To(Equal(2))
	})
})
