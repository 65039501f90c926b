package command

import "context"

type stubLink struct {
	reply string
	err   error
	sent  []string
}

func (l *stubLink) SendAndAwait(message string) (string, error) {
	l.sent = append(l.sent, message)
	if l.err != nil {
		return "", l.err
	}
	return l.reply, nil
}

func (l *stubLink) Close() error { return nil }

type stubVision struct {
	answer    string
	err       error
	questions []string
	images    [][]byte
}

func (v *stubVision) Ask(_ context.Context, image []byte, question string) (string, error) {
	v.questions = append(v.questions, question)
	v.images = append(v.images, image)
	if v.err != nil {
		return "", v.err
	}
	return v.answer, nil
}

type stubFrames struct {
	frame []byte
	err   error
}

func (f *stubFrames) Capture(context.Context) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.frame, nil
}
