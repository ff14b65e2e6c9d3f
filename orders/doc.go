// Package orders keeps the order history created at checkout and the admin status cycle
// В обработке → Собран → В пути → Доставлен → В обработке.
package orders
