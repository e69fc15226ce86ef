package notify

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	notificationsDest = "org.freedesktop.Notifications"
	notificationsPath = "/org/freedesktop/Notifications"
	notifyMethod      = notificationsDest + ".Notify"

	expireTimeoutMs = 5000
)

// urgency hint levels of the desktop notification spec
const (
	urgencyNormal   byte = 1
	urgencyCritical byte = 2
)

// busNotify sends the notification straight to the session bus
// notification daemon.
func busNotify(title, message string, nType NotificationType) error {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}
	defer conn.Close()

	urgency := urgencyNormal
	if nType == Error {
		urgency = urgencyCritical
		title += " Error"
	}

	obj := conn.Object(notificationsDest, dbus.ObjectPath(notificationsPath))
	call := obj.Call(notifyMethod, 0,
		"hypr-grid",
		uint32(0),
		"",
		title,
		message,
		[]string{},
		map[string]dbus.Variant{"urgency": dbus.MakeVariant(urgency)},
		int32(expireTimeoutMs),
	)
	if call.Err != nil {
		return fmt.Errorf("notify call failed: %w", call.Err)
	}
	return nil
}
